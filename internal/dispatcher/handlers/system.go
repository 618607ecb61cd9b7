package handlers

import (
	"github.com/dshills/fcconsole/internal/dispatcher/execctx"
	"github.com/dshills/fcconsole/internal/flight"
)

// Status prints uptime, battery, CPU, sensor and loop statistics.
func Status(ctx *execctx.ExecutionContext, _ string) {
	if ctx.Device == nil {
		ctx.Out.Print("ERR: Device unavailable\r\n")
		return
	}
	t := ctx.Device.Telemetry()

	ctx.Out.Printf("System Uptime: %d seconds, Voltage: %d * 0.1V (%dS battery)\r\n",
		int64(t.Uptime.Seconds()), t.VBat, t.BatteryCells)

	ctx.Out.Printf("CPU %dMHz, detected sensors: ", t.CPUMHz)
	for _, s := range flight.Sensors() {
		if t.Sensors&s.Mask() != 0 {
			ctx.Out.Printf("%s ", s)
		}
	}
	if t.Sensors&flight.SensorAcc.Mask() != 0 {
		ctx.Out.Printf("ACCHW: %s", flight.AccName(t.AccHardware))
	}
	ctx.Out.Print("\r\n")

	ctx.Out.Printf("Cycle Time: %d, I2C Errors: %d\r\n", t.CycleTime, t.I2CErrors)
}

// Version prints the firmware banner.
func Version(ctx *execctx.ExecutionContext, _ string) {
	date, clock := "unknown", "unknown"
	if ctx.Device != nil {
		date, clock = ctx.Device.BuildDate(), ctx.Device.BuildTime()
	}
	ctx.Out.Printf("Afro32 CLI version 2.1 %s / %s", date, clock)
}

// Save persists the configuration and reboots.
func Save(ctx *execctx.ExecutionContext, _ string) {
	if !requireDevice(ctx) {
		return
	}
	ctx.Out.Print("Saving...")
	if err := ctx.Store.Save(ctx.Config); err != nil {
		ctx.Logger.Error("save failed: %v", err)
		ctx.Out.Print("\r\nERR: Save failed\r\n")
		return
	}
	ctx.Logger.Info("configuration saved")
	ctx.Out.Print("\r\n")
	Exit(ctx, "")
}

// Exit reboots without saving. Unsaved changes are discarded.
func Exit(ctx *execctx.ExecutionContext, _ string) {
	if !requireDevice(ctx) {
		return
	}
	ctx.Out.Print("Rebooting...")
	if err := ctx.Device.Reboot(ctx.Config); err != nil {
		ctx.Logger.Error("reboot failed: %v", err)
		ctx.Out.Print("\r\nERR: Reboot failed\r\n")
		return
	}
	ctx.Logger.Info("device rebooted")
	ctx.Leave()
}

// Defaults restores the factory configuration, persists it and reboots.
func Defaults(ctx *execctx.ExecutionContext, _ string) {
	if !requireDevice(ctx) {
		return
	}
	ctx.Out.Print("Resetting to defaults...\r\n")
	if err := ctx.Store.ResetDefaults(ctx.Config); err != nil {
		ctx.Logger.Error("reset to defaults failed: %v", err)
		ctx.Out.Print("ERR: Reset failed\r\n")
		return
	}
	ctx.Logger.Info("configuration reset to defaults")
	Exit(ctx, "")
}

func requireDevice(ctx *execctx.ExecutionContext) bool {
	if err := ctx.ValidateForDevice(); err != nil {
		ctx.Logger.Error("%v", err)
		ctx.Out.Print("ERR: Device unavailable\r\n")
		return false
	}
	return true
}
