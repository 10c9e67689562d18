package base64

// staging holds the output of the chunk currently being drained.
type staging struct {
	buf [decodeChunkSize]byte
	idx int
	len int
}

func (s *staging) fill(b []byte) {
	s.len = copy(s.buf[:], b)
	s.idx = 0
}

func (s *staging) next() (byte, bool) {
	if s.idx >= s.len {
		return 0, false
	}
	s.idx++
	return s.buf[s.idx-1], true
}

func (s *staging) remaining() int {
	return s.len - s.idx
}
