package sink

import (
	"io"

	"go.uber.org/zap"
)

type debugWriter struct {
	Base   io.Writer
	log    *zap.SugaredLogger
	offset int
}

var _ io.Writer = &debugWriter{}

// Debug wraps base so that every write is logged as hex at debug level
func Debug(base io.Writer, log *zap.SugaredLogger) io.Writer {
	return &debugWriter{Base: base, log: log}
}

func chunks(buf []byte, sz int) (bufs [][]byte) {
	for len(buf) > sz {
		bufs = append(bufs, buf[0:sz])
		buf = buf[sz:]
	}
	return append(bufs, buf)
}

func (d *debugWriter) Write(p []byte) (int, error) {
	for i, bit := range chunks(p, 32) {
		d.log.Debugf("-> %06x | %-64x |", d.offset+i*32, bit)
	}

	n, err := d.Base.Write(p)
	d.offset += n
	if err != nil {
		d.log.Debugf("<- Error after %d of %d bytes: %s", n, len(p), err)
	}
	return n, err
}
