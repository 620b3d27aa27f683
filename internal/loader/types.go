package loader

type ErrorKind int

const (
	ErrorFileNotFound ErrorKind = iota
	ErrorUnsupportedFormat
	ErrorEmptyFile
	ErrorCorruptedFile
)

type LoadError struct {
	Kind    ErrorKind
	Path    string
	Message string
}

func (e LoadError) Error() string {
	return e.Message
}
