package errprocess

import (
	"chatlog_service/pkg/logger"

	"go.uber.org/zap"
)

// KindError carries an error kind and the message shown to the caller
type KindError struct {
	Kind error
	Msg  string
}

func (e *KindError) Error() string {
	return e.Msg
}

// Unwrap expose the kind to errors.Is
func (e *KindError) Unwrap() error {
	return e.Kind
}

// Set set err info
func Set(kind error, errMsg string) error {
	logger.Log.Debug(errMsg, zap.NamedError("kind", kind))
	return &KindError{Kind: kind, Msg: errMsg}
}
