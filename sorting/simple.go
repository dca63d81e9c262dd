package sorting

// bubble: n passes; pass i bubbles the largest remaining value to n-1-i.
func (s *sorter) bubble() error {
	n := s.a.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n-1-i; j++ {
			if err := s.compare(j, j+1); err != nil {
				return err
			}
			if s.a.Less(j+1, j) {
				if err := s.swap(j, j+1); err != nil {
					return err
				}
			}
		}
		if err := s.final(n-1-i, n-1-i); err != nil {
			return err
		}
	}

	return nil
}

// selection: pass i selects the minimum of a[i:] and swaps it into slot i.
func (s *sorter) selection() error {
	n := s.a.Len()
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if err := s.compare(j, minIdx); err != nil {
				return err
			}
			if s.a.Less(j, minIdx) {
				minIdx = j
			}
		}
		if minIdx != i {
			if err := s.swap(i, minIdx); err != nil {
				return err
			}
		}
		if err := s.final(i, minIdx); err != nil {
			return err
		}
	}

	return nil
}

// insertion sinks a[i] into the sorted prefix by adjacent swaps. Equal
// elements never swap, which keeps the sort stable.
func (s *sorter) insertion() error {
	n := s.a.Len()
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			if err := s.compare(j-1, j); err != nil {
				return err
			}
			if !s.a.Less(j, j-1) {
				break
			}
			if err := s.swap(j-1, j); err != nil {
				return err
			}
		}
	}
	for k := 0; k < n; k++ {
		if err := s.final(k, k); err != nil {
			return err
		}
	}

	return nil
}
