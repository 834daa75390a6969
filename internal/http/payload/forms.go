package payload

import (
	"errors"
	"feedbacker/internal/core"
	"net/url"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// bcrypt ignores input past this many bytes.
const maxPasswordBytes = 72

var errPasswordTooLong = validation.NewError("validation_password_too_long", "must be at most 72 bytes long")

type RegisterForm struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewRegisterForm(values url.Values) RegisterForm {
	return RegisterForm{
		Username:  values.Get("username"),
		Password:  values.Get("password"),
		Email:     values.Get("email"),
		FirstName: values.Get("first_name"),
		LastName:  values.Get("last_name"),
	}
}

func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required, validation.RuneLength(1, 20)),
		validation.Field(&f.Password, validation.Required, validation.By(maxBytes(maxPasswordBytes))),
		validation.Field(&f.Email, validation.Required, validation.RuneLength(0, 50), is.EmailFormat),
		validation.Field(&f.FirstName, validation.Required, validation.RuneLength(1, 30)),
		validation.Field(&f.LastName, validation.Required, validation.RuneLength(1, 30)),
	)
}

func (f RegisterForm) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username:  f.Username,
		Password:  f.Password,
		Email:     f.Email,
		FirstName: f.FirstName,
		LastName:  f.LastName,
	}
}

// LoginForm only bounds the username length. Empty fields fall through to a
// failed credential check.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewLoginForm(values url.Values) LoginForm {
	return LoginForm{
		Username: values.Get("username"),
		Password: values.Get("password"),
	}
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.RuneLength(1, 20)),
	)
}

func (f LoginForm) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: f.Username,
		Password: f.Password,
	}
}

type FeedbackForm struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewFeedbackForm(values url.Values) FeedbackForm {
	return FeedbackForm{
		Title:   values.Get("title"),
		Content: values.Get("content"),
	}
}

func (f FeedbackForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&f.Content, validation.Required),
	)
}

func (f FeedbackForm) ToMessage() core.FeedbackMessage {
	return core.FeedbackMessage{
		Title:   f.Title,
		Content: f.Content,
	}
}

func maxBytes(limit int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return errors.New("must be a string")
		}
		if len(s) > limit {
			return errPasswordTooLong
		}
		return nil
	}
}
