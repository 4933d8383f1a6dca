package services

import (
	"fmt"

	"github.com/dmitrijs2005/taskbalance/internal/common"
)

// PersistenceError reports a remote store call that failed. Local state is
// left exactly as it was before the attempt.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, common.ErrPersistence) match any PersistenceError.
func (e *PersistenceError) Is(target error) bool {
	return target == common.ErrPersistence
}
