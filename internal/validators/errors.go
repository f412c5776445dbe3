package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrNameTooLong         = errors.New("name is too long")
	ErrInvalidEmail        = errors.New("email must be a valid college email")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes long")
	ErrPasswordsDoNotMatch = errors.New("passwords are not the same")
	ErrEmptyTitle          = errors.New("blog title is required")
	ErrTitleTooLong        = errors.New("blog title is too long")
	ErrEmptyContent        = errors.New("blog content is required")
	ErrTooManyTags         = errors.New("too many tags")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrBioTooLong          = errors.New("bio is too long")
)
