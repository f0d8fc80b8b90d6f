package rips

import "sync"

// Frame buffers on the receive path are reused between reads so that a
// steady packet stream does not allocate per frame.

var byteSlicePool = sync.Pool{
	New: func() interface{} { return make([]byte, defaultMTU+EthernetMinLen) },
}

func getByteSlice(n int) []byte {
	b := byteSlicePool.Get().([]byte)
	if len(b) < n {
		byteSlicePool.Put(b)
		return make([]byte, n)
	}
	return b[:n]
}

func putByteSlice(b []byte) {
	byteSlicePool.Put(b)
}
