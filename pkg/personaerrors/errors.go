package personaerrors

import (
	"errors"
)

var (
	// ErrInvalidJSON indicates input that isn't syntactically valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrInvalidYAML indicates input that couldn't be converted from YAML.
	ErrInvalidYAML = errors.New("invalid YAML")

	// ErrReadFile indicates an error occurred while reading a file.
	ErrReadFile = errors.New("read file")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidCharacter indicates a character document failed schema validation.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrJSONMarshal indicates an error occurred while marshaling JSON.
	ErrJSONMarshal = errors.New("marshal JSON")

	// ErrParseArgs indicates an error occurred while parsing arguments.
	ErrParseArgs = errors.New("parse arguments")

	// ErrInvalidArguments indicates invalid arguments were provided.
	ErrInvalidArguments = errors.New("invalid arguments")
)
