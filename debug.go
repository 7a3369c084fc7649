package bir

import "log"

// Debug enables tracing of admission rejections to the standard logger.
// Edge-list mutations are not traced. It is off by default; this package performs no I/O
// otherwise and nothing here is required for correct operation.
var Debug = false

func debugf(format string, args ...interface{}) {
	if Debug {
		log.Printf("bir: "+format, args...)
	}
}
