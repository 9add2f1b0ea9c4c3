package linkedlist

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds 索引无法从锚点向前走到（负数、越过末尾或空表删除）
var ErrIndexOutOfBounds = errors.New("index out of bounds")

func indexError(index int) error {
	return fmt.Errorf("%w: index %d", ErrIndexOutOfBounds, index)
}
