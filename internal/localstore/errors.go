package localstore

import "fmt"

// MalformedStoreDataError reports a stored value that is not valid JSON or
// does not have the expected shape. The accessor never returns it to callers;
// it logs it and falls back to the caller's default.
type MalformedStoreDataError struct {
	Key   string
	Cause error
}

func (e *MalformedStoreDataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed data under key %q: %v", e.Key, e.Cause)
	}
	return fmt.Sprintf("malformed data under key %q", e.Key)
}

func (e *MalformedStoreDataError) Unwrap() error {
	return e.Cause
}

// BackendError represents a failure of the underlying storage backend.
type BackendError struct {
	Op    string
	Key   string
	Cause error
}

func (e *BackendError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("store %s %q failed: %v", e.Op, e.Key, e.Cause)
	}
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}
