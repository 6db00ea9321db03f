package uow

import "errors"

var (
	// ErrRepositoryNotRegistered запрошенное имя не регистрировалось при сборке uow.
	ErrRepositoryNotRegistered = errors.New("[uow] repository not registered")
	// ErrRepositoryAlreadyRegistered повторная регистрация под тем же именем.
	ErrRepositoryAlreadyRegistered = errors.New("[uow] repository already registered")
	// ErrInvalidRepositoryType фабрика вернула репозиторий не того типа, который
	// ожидает GetRepositoryAs/GetAs.
	ErrInvalidRepositoryType = errors.New("[uow] invalid repository type")
)
