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

	// Test IsFileExists predicate
	existsErr := NewFileError("file already exists", "/path/to/file", FileExists, nil)
	assert.True(t, IsFileExists(existsErr))
	assert.False(t, IsFileExists(notFoundErr))

	// Test As for FileError
	var fe *FileError
	assert.True(t, As(fileErr, &fe))
	assert.Equal(t, "/path/to/file", fe.Path())
}

func TestConfigError(t *testing.T) {
	// Test creating a config error
	configErr := NewConfigError("invalid value", "anim_duration", InvalidConfig, nil)
	assert.NotNil(t, configErr)
	assert.Equal(t, "invalid value: anim_duration", configErr.Error())
	assert.Equal(t, "anim_duration", configErr.Param())
	assert.Equal(t, InvalidConfig, configErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("value out of range")
	configErr = NewConfigError("invalid value", "anim_duration", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: anim_duration: value out of range", configErr.Error())
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
	assert.Equal(t, "anim_duration", ce.Param())
}

func TestErrorChains(t *testing.T) {
	// Create a chain of errors
	baseErr := errors.New("base error")
	fileErr := NewFileError("file error", "/path/to/file", FileNotFound, baseErr)
	configErr := NewConfigError("config error", "theme", InvalidConfig, fileErr)

	// Test complete error message
	assert.Equal(t, "config error: theme: file error: /path/to/file: base error", configErr.Error())

	// Test Is function through the chain
	assert.True(t, Is(configErr, baseErr))
	assert.True(t, Is(configErr, fileErr))

	// Test As function through the chain
	var fe *FileError
	assert.True(t, As(configErr, &fe))
	assert.Equal(t, "/path/to/file", fe.Path())

	// Test error predicates through the chain
	assert.True(t, IsFileNotFound(configErr))
	assert.True(t, IsInvalidConfig(configErr))
}
