package handlers

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"movie-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

const wholeNumberMessage = "Enter a whole number."

// Form posts bind integers as text first so a bad number is reported on
// its own field instead of failing the whole decode.
type movieFormInput struct {
	Title        string `form:"title"`
	ReleaseYear  string `form:"release_year"`
	Description  string `form:"description"`
	DirectorName string `form:"director_name"`
	Genres       string `form:"genres"`
	Actors       string `form:"actors"`
}

type reviewFormInput struct {
	Text   string `form:"text"`
	Rating string `form:"rating"`
}

func bindMovieForm(c *fiber.Ctx) (*services.MovieForm, error) {
	var form services.MovieForm
	if c.Is("json") {
		if err := c.BodyParser(&form); err != nil {
			return nil, invalidForm(err)
		}
		return &form, nil
	}

	var in movieFormInput
	if err := c.BodyParser(&in); err != nil {
		return nil, invalidForm(err)
	}
	year, ok := wholeNumber(in.ReleaseYear)
	if !ok {
		return nil, fieldError("release_year", wholeNumberMessage)
	}

	form = services.MovieForm{
		Title:        in.Title,
		ReleaseYear:  year,
		Description:  in.Description,
		DirectorName: in.DirectorName,
		Genres:       in.Genres,
		Actors:       in.Actors,
	}
	return &form, nil
}

func bindReviewForm(c *fiber.Ctx) (*services.ReviewForm, error) {
	var form services.ReviewForm
	if c.Is("json") {
		if err := c.BodyParser(&form); err != nil {
			return nil, invalidForm(err)
		}
		return &form, nil
	}

	var in reviewFormInput
	if err := c.BodyParser(&in); err != nil {
		return nil, invalidForm(err)
	}
	rating, ok := wholeNumber(in.Rating)
	if !ok {
		return nil, fieldError("rating", wholeNumberMessage)
	}

	form = services.ReviewForm{Text: in.Text, Rating: rating}
	return &form, nil
}

// wholeNumber parses a submitted integer. Blank text is zero so the
// required rule reports it.
func wholeNumber(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}

func fieldError(field, message string) error {
	return &services.ValidationError{Fields: map[string]string{field: message}}
}

// invalidForm turns a body decode failure into a validation error. JSON type
// mismatches are reported on the offending field.
func invalidForm(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		switch typeErr.Type.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return fieldError(typeErr.Field, wholeNumberMessage)
		default:
			return fieldError(typeErr.Field, "Enter a valid value.")
		}
	}
	return fieldError("__all__", "Invalid form data: "+err.Error())
}
