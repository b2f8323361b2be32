package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Test creating a new error
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	// Test creating a new formatted error
	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "formatted error", appErr.Error())
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	// Test wrapping an error
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	// Test unwrapping
	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	// Test wrapped formatted error
	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedFormatted)
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Test wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	// Test deeper wrapping
	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())

	// Test Is function
	assert.True(t, Is(wrappedErr, origErr))
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	// Test creating a file error
	fileErr := NewFileError("cannot access", "/path/to/file", FileAccessDenied, nil)
	assert.NotNil(t, fileErr)
	assert.Equal(t, "cannot access: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.Equal(t, FileAccessDenied, fileErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot access", "/path/to/file", FileAccessDenied, origErr)
	assert.Equal(t, "cannot access: /path/to/file: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	// Test predefined errors
	assert.Equal(t, "file not found", ErrFileNotFound.Error())
	assert.Equal(t, FileNotFound, ErrFileNotFound.Kind())

	// Test IsFileNotFound predicate
	notFoundErr := NewFileError("file not found", "/missing/file", FileNotFound, nil)
	assert.True(t, IsFileNotFound(notFoundErr))
	assert.False(t, IsFileNotFound(fileErr)) // This is FileAccessDenied

	// Test IsFileAccessDenied predicate
	assert.True(t, IsFileAccessDenied(fileErr))
	assert.False(t, IsFileAccessDenied(notFoundErr))

	// Test IsScriptWriteFailed predicate
	writeErr := NewFileError("script write failed", "/out/cull.sh", ScriptWriteFailed, origErr)
	assert.True(t, IsScriptWriteFailed(writeErr))
	assert.False(t, IsScriptWriteFailed(fileErr))

	// Test As for FileError
	var fe *FileError
	assert.True(t, As(fileErr, &fe))
	assert.Equal(t, "/path/to/file", fe.Path())
}

func TestConfigError(t *testing.T) {
	// Test creating a config error
	configErr := NewConfigError("invalid value", "review.output", InvalidConfig, nil)
	assert.NotNil(t, configErr)
	assert.Equal(t, "invalid value: review.output", configErr.Error())
	assert.Equal(t, "review.output", configErr.Param())
	assert.Equal(t, InvalidConfig, configErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("value out of range")
	configErr = NewConfigError("invalid value", "review.output", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: review.output: value out of range", configErr.Error())
	assert.Equal(t, origErr, Unwrap(configErr))

	// Test predefined errors
	assert.Equal(t, "invalid configuration", ErrInvalidConfig.Error())
	assert.Equal(t, InvalidConfig, ErrInvalidConfig.Kind())

	// Test IsInvalidConfig predicate
	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(New("some other error")))

	// Test As for ConfigError
	var ce *ConfigError
	assert.True(t, As(configErr, &ce))
	assert.Equal(t, "review.output", ce.Param())
}

func TestBindingError(t *testing.T) {
	// Test creating a binding error
	bindErr := NewBindingError("malformed binding", 'a', "/pics/animals", InvalidBinding, nil)
	assert.NotNil(t, bindErr)
	assert.Equal(t, "malformed binding: /pics/animals", bindErr.Error())
	assert.Equal(t, 'a', bindErr.Key())
	assert.Equal(t, "/pics/animals", bindErr.Target())
	assert.Equal(t, InvalidBinding, bindErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("not a directory")
	bindErr = NewBindingError("bad target", 'a', "/pics/animals", TargetNotDirectory, origErr)
	assert.Equal(t, "bad target: /pics/animals: not a directory", bindErr.Error())
	assert.Equal(t, origErr, Unwrap(bindErr))

	// Test IsInvalidBinding predicate
	invalidErr := NewBindingError("malformed binding", 0, "", InvalidBinding, nil)
	assert.True(t, IsInvalidBinding(invalidErr))
	assert.False(t, IsInvalidBinding(bindErr)) // This is TargetNotDirectory

	// Test IsTargetNotDirectory predicate
	assert.True(t, IsTargetNotDirectory(bindErr))
	assert.False(t, IsTargetNotDirectory(invalidErr))

	// Test As for BindingError
	var be *BindingError
	assert.True(t, As(bindErr, &be))
	assert.Equal(t, 'a', be.Key())
}

func TestErrorChains(t *testing.T) {
	// Create a chain of errors
	baseErr := errors.New("base error")
	fileErr := NewFileError("file error", "/path/to/file", FileNotFound, baseErr)
	configErr := NewConfigError("config error", "bindings", InvalidConfig, fileErr)
	bindErr := NewBindingError("binding error", 'a', "/dest", InvalidBinding, configErr)

	// Test complete error message
	assert.Equal(t, "binding error: /dest: config error: bindings: file error: /path/to/file: base error", bindErr.Error())

	// Test Is function through the chain
	assert.True(t, Is(bindErr, baseErr))
	assert.True(t, Is(bindErr, fileErr))
	assert.True(t, Is(bindErr, configErr))

	// Test As function through the chain
	var fe *FileError
	assert.True(t, As(bindErr, &fe))
	assert.Equal(t, "/path/to/file", fe.Path())

	var ce *ConfigError
	assert.True(t, As(bindErr, &ce))
	assert.Equal(t, "bindings", ce.Param())

	// Test error predicates through the chain
	assert.True(t, IsFileNotFound(bindErr))
	assert.True(t, IsInvalidConfig(bindErr))
	assert.True(t, IsInvalidBinding(bindErr))
}
