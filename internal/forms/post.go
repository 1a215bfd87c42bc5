package forms

import (
	"strings"

	"github.com/jask/statelab/internal/placeholder"
)

// DefaultPostBody is sent when the body field is left empty.
const DefaultPostBody = "This is a sample post body."

// MaxUserID is the highest user id offered by the post form.
const MaxUserID = 10

type postInput struct {
	Title  string `validate:"notblank"`
	UserID int    `validate:"min=1,max=10"`
}

var postPriority = []tagError{
	{tag: "notblank", err: ErrTitleRequired},
	{tag: "min", err: ErrUserIDRange},
	{tag: "max", err: ErrUserIDRange},
}

// BuildPost validates the create-post form and returns the request body.
func BuildPost(title, body string, userID int) (placeholder.NewPost, error) {
	if err := validate.Struct(postInput{Title: title, UserID: userID}); err != nil {
		return placeholder.NewPost{}, mapTagErrors(err, postPriority)
	}
	if strings.TrimSpace(body) == "" {
		body = DefaultPostBody
	}
	return placeholder.NewPost{Title: strings.TrimSpace(title), Body: body, UserID: userID}, nil
}
