package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"movie-catalog/internal/models"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

const maxGenreNameLength = 100

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Upload is a file received with a form. Data may be nil when the declared
// size already exceeds the limit and the body was not read.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// MovieForm is the create/update input for a movie.
type MovieForm struct {
	Title        string  `json:"title" form:"title" validate:"required,max=256" example:"Inception"`
	ReleaseYear  int     `json:"release_year" form:"release_year" validate:"required" example:"2010"`
	Description  string  `json:"description" form:"description" validate:"required" example:"A thief who steals corporate secrets..."`
	DirectorName string  `json:"director_name" form:"director_name" validate:"required,max=100" example:"Christopher Nolan"`
	Genres       string  `json:"genres" form:"genres" example:"Action, Sci-Fi"`
	Actors       string  `json:"actors" form:"actors" validate:"max=256" example:"Leonardo DiCaprio, Elliot Page"`
	Picture      *Upload `json:"-" form:"-" validate:"-"`
}

// MovieFormView is what the create and edit pages render.
type MovieFormView struct {
	Form               MovieForm `json:"form"`
	MaxUploadLimit     int64     `json:"max_upload_limit"`
	MaxUploadLimitText string    `json:"max_upload_limit_text" example:"5.2 MB"`
}

// ReviewForm is the input for posting a review.
type ReviewForm struct {
	Text   string `json:"text" form:"text" validate:"required" example:"Loved the score."`
	Rating int    `json:"rating" form:"rating" validate:"required,min=1,max=5" example:"5"`
}

func (f *MovieForm) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.DirectorName = strings.TrimSpace(f.DirectorName)
	f.Actors = strings.TrimSpace(f.Actors)
}

// validateMovieForm normalizes the form and checks fields, tags and the
// picture size against maxPicture.
func validateMovieForm(f *MovieForm, maxPicture int64) error {
	f.normalize()

	verr := &ValidationError{}
	collectFieldErrors(verr, validate.Struct(f))

	for _, name := range ParseTags(f.Genres) {
		if len([]rune(name)) > maxGenreNameLength {
			verr.add("genres", fmt.Sprintf("Genre %q is longer than %d characters.", name, maxGenreNameLength))
		}
	}

	if f.Picture != nil {
		size := f.Picture.Size
		if n := int64(len(f.Picture.Data)); n > size {
			size = n
		}
		if size > maxPicture {
			verr.add("picture", "File must be <= "+humanize.Bytes(uint64(maxPicture)))
		} else if len(f.Picture.Data) == 0 {
			verr.add("picture", "The submitted file is empty.")
		}
	}

	return verr.orNil()
}

func validateReviewForm(f *ReviewForm) error {
	f.Text = strings.TrimSpace(f.Text)

	verr := &ValidationError{}
	if f.Rating < models.MinRating || f.Rating > models.MaxRating {
		verr.add("rating", fmt.Sprintf("Rating must be between %d and %d.", models.MinRating, models.MaxRating))
	}
	collectFieldErrors(verr, validate.Struct(f))

	return verr.orNil()
}

// pictureContentType keeps the declared type unless it is missing or generic.
func pictureContentType(u *Upload) string {
	ct := strings.TrimSpace(u.ContentType)
	if ct == "" || ct == "application/octet-stream" {
		return mimetype.Detect(u.Data).String()
	}
	return ct
}

func collectFieldErrors(verr *ValidationError, err error) {
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.add("__all__", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		verr.add(fe.Field(), fieldMessage(fe))
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
