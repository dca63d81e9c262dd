package sorting

// heapSort builds a max-heap bottom-up, then repeatedly moves the root
// behind the shrinking heap boundary.
func (s *sorter) heapSort() error {
	n := s.a.Len()
	for i := n/2 - 1; i >= 0; i-- {
		if err := s.heapify(n, i); err != nil {
			return err
		}
	}
	for end := n - 1; end > 0; end-- {
		if err := s.swap(0, end); err != nil {
			return err
		}
		if err := s.final(end, end); err != nil {
			return err
		}
		if err := s.heapify(end, 0); err != nil {
			return err
		}
	}

	return s.final(0, 0)
}

// heapify sifts a[i] down within a[0:size].
func (s *sorter) heapify(size, i int) error {
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < size {
			if err := s.compare(l, largest); err != nil {
				return err
			}
			if s.a.Less(largest, l) {
				largest = l
			}
		}
		if r < size {
			if err := s.compare(r, largest); err != nil {
				return err
			}
			if s.a.Less(largest, r) {
				largest = r
			}
		}
		if largest == i {
			return nil
		}
		if err := s.swap(i, largest); err != nil {
			return err
		}
		i = largest
	}
}
