package usecase

import "fmt"

// Kind identifies a business failure. The set is closed: controllers match
// on it exhaustively to pick a response status.
type Kind int

const (
	// KindMissingParam reports required input that was not supplied.
	KindMissingParam Kind = iota + 1
	// KindInvalidEmail reports an email that fails the account rules.
	KindInvalidEmail
	// KindInvalidPassword reports a password that fails the account rules.
	KindInvalidPassword
	// KindExistingUser reports a sign-up for an email that is already taken.
	KindExistingUser
	// KindUserNotFound reports a sign-in for an unknown email.
	KindUserNotFound
	// KindWrongPassword reports a sign-in with a password that does not match.
	KindWrongPassword
)

var kindCodes = map[Kind]string{
	KindMissingParam:    "MISSING_PARAM",
	KindInvalidEmail:    "INVALID_EMAIL",
	KindInvalidPassword: "INVALID_PASSWORD",
	KindExistingUser:    "EXISTING_USER",
	KindUserNotFound:    "USER_NOT_FOUND",
	KindWrongPassword:   "WRONG_PASSWORD",
}

// String returns the machine-readable code sent to clients.
func (k Kind) String() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Failure is an expected business outcome returned as the left side of a
// use case result. It is never returned through the error channel.
type Failure struct {
	Kind    Kind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// Code is the failure's machine-readable code.
func (f *Failure) Code() string {
	return f.Kind.String()
}

// MissingParam reports absent request fields. names is the joined list.
func MissingParam(names string) *Failure {
	return &Failure{
		Kind:    KindMissingParam,
		Message: fmt.Sprintf("Missing parameter from request: %s.", names),
	}
}

func InvalidEmail(email string) *Failure {
	return &Failure{
		Kind:    KindInvalidEmail,
		Message: fmt.Sprintf("Invalid email: %s.", email),
	}
}

func InvalidPassword() *Failure {
	return &Failure{
		Kind:    KindInvalidPassword,
		Message: "Invalid password.",
	}
}

func ExistingUser(email string) *Failure {
	return &Failure{
		Kind:    KindExistingUser,
		Message: fmt.Sprintf("User %s already exists.", email),
	}
}

func UserNotFound(email string) *Failure {
	return &Failure{
		Kind:    KindUserNotFound,
		Message: fmt.Sprintf("User %s not found.", email),
	}
}

func WrongPassword() *Failure {
	return &Failure{
		Kind:    KindWrongPassword,
		Message: "Wrong password.",
	}
}
