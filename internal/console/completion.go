package console

// complete extends the line buffer to the longest prefix shared by every
// command that matches it. A unique, fully typed command gets a trailing
// space. An empty buffer or an ambiguous match lists the candidates and
// redraws the prompt and line.
func (s *Session) complete() {
	names := s.d.Table().Complete(s.Line())
	redraw := s.n

	if s.n > 0 && len(names) > 0 {
		first, last := names[0], names[len(names)-1]
		for s.n < BufferSize {
			a, b := charAt(first, s.n), charAt(last, s.n)
			if a != b {
				break
			}
			if a == 0 {
				s.buf[s.n] = ' '
				s.n++
				break
			}
			s.buf[s.n] = a
			s.n++
		}
	}

	if s.n == 0 || len(names) > 1 {
		s.out.Print(ClearLine)
		for _, name := range names {
			s.out.Print(name)
			_ = s.out.WriteByte('\t')
		}
		s.out.Print(Prompt)
		redraw = 0
	}

	_, _ = s.out.Write(s.buf[redraw:s.n])
}

// charAt returns s[i], or 0 past the end of s.
func charAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}
