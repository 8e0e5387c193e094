package win32

import "time"

// defaultDoubleClickInterval is the Windows default GetDoubleClickTime value.
const defaultDoubleClickInterval = 500 * time.Millisecond
