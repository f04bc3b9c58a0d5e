package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownColumn    = errors.New("coluna não encontrada")
	ErrNonNumericColumn = errors.New("coluna não numérica")
	ErrLoad             = errors.New("erro ao carregar dataset")
)

// SchemaError indica referência a uma coluna que não existe no dataset
type SchemaError struct {
	Column string
	Op     string // operação que referenciou a coluna (filter, group_by, aggregate...)
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s '%s'", e.Op, e.Err.Error(), e.Column)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func unknownColumn(op, column string) *SchemaError {
	return &SchemaError{Column: column, Op: op, Err: ErrUnknownColumn}
}

// LoadError indica que a fonte de dados está ausente, ilegível ou malformada
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrLoad.Error(), e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
