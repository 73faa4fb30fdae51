package widget

import (
	"strconv"
	"sync/atomic"
)

// WidgetID uniquely identifies a widget instance for the lifetime of the
// process. The zero value means "no widget".
type WidgetID uint64

var nextWidgetID atomic.Uint64

// NewWidgetID returns a fresh id.
func NewWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// IsValid reports whether the id refers to a widget.
func (id WidgetID) IsValid() bool {
	return id != 0
}

func (id WidgetID) String() string {
	return "WidgetID(" + strconv.FormatUint(uint64(id), 10) + ")"
}
