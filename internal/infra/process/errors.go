// Where: apkbuild/internal/infra/process/errors.go
// What: Shared error definitions for process infra.
// Why: Ensure consistent error wrapping without dynamic error creation.
package process

import "errors"

var errCommandNameRequired = errors.New("command name is required")
