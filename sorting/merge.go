package sorting

// mergeSort is top-down merge sort over the whole array.
func (s *sorter) mergeSort() error {
	return s.mergeRange(0, s.a.Len()-1)
}

func (s *sorter) mergeRange(l, r int) error {
	if l >= r {
		return nil
	}
	m := (l + r) / 2
	if err := s.mergeRange(l, m); err != nil {
		return err
	}
	if err := s.mergeRange(m+1, r); err != nil {
		return err
	}

	return s.merge(l, m, r)
}

// merge combines the sorted runs a[l..m] and a[m+1..r]. Elements are
// addressed by their offset at the start of the merge; where and who track
// how the write-back swaps move them. Ties take the left run first.
func (s *sorter) merge(l, m, r int) error {
	n := r - l + 1
	vals := make([]int64, n)
	where := make([]int, n) // offset -> current slot
	who := make([]int, n)   // slot - l -> offset
	for k := 0; k < n; k++ {
		vals[k] = s.a.At(l + k)
		where[k] = l + k
		who[k] = k
	}

	mid := m - l + 1
	i, j := 0, mid
	for k := l; k <= r; k++ {
		var take int
		switch {
		case i >= mid:
			take, j = j, j+1
		case j >= n:
			take, i = i, i+1
		default:
			if err := s.compare(where[i], where[j]); err != nil {
				return err
			}
			if vals[i] <= vals[j] {
				take, i = i, i+1
			} else {
				take, j = j, j+1
			}
		}

		src := where[take]
		if src != k {
			if err := s.swap(k, src); err != nil {
				return err
			}
			displaced := who[k-l]
			who[k-l], who[src-l] = take, displaced
			where[take], where[displaced] = k, src
		}
		if err := s.final(k, src); err != nil {
			return err
		}
	}

	return nil
}
