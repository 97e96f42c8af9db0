package services

import (
	"bytes"
	"strings"
	"testing"

	"movie-catalog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func validMovieForm() *MovieForm {
	return &MovieForm{
		Title:        "Inception",
		ReleaseYear:  2010,
		Description:  "Dreams within dreams.",
		DirectorName: "Christopher Nolan",
		Genres:       "Sci-Fi, Action",
		Actors:       "Leonardo DiCaprio",
	}
}

func pictureOfSize(n int) *Upload {
	data := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, n-len(pngHeader))...)
	return &Upload{Filename: "poster.png", ContentType: "image/png", Size: int64(n), Data: data}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	return verr.Fields
}

func TestValidateMovieForm_Valid(t *testing.T) {
	form := validMovieForm()
	form.Title = "  Inception  "
	assert.NoError(t, validateMovieForm(form, config.DefaultMaxPictureBytes))
	assert.Equal(t, "Inception", form.Title)
}

func TestValidateMovieForm_MissingFields(t *testing.T) {
	fields := fieldErrors(t, validateMovieForm(&MovieForm{}, config.DefaultMaxPictureBytes))

	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "release_year")
	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "director_name")
	assert.NotContains(t, fields, "genres")
	assert.NotContains(t, fields, "actors")
}

func TestValidateMovieForm_Lengths(t *testing.T) {
	form := validMovieForm()
	form.Title = strings.Repeat("t", 257)
	form.DirectorName = strings.Repeat("d", 101)
	form.Genres = "Drama, " + strings.Repeat("g", 101)

	fields := fieldErrors(t, validateMovieForm(form, config.DefaultMaxPictureBytes))
	assert.Equal(t, "Ensure this value has at most 256 characters.", fields["title"])
	assert.Equal(t, "Ensure this value has at most 100 characters.", fields["director_name"])
	assert.Contains(t, fields["genres"], "longer than 100 characters")
}

func TestValidateMovieForm_ReleaseYear(t *testing.T) {
	form := validMovieForm()
	form.ReleaseYear = 0
	fields := fieldErrors(t, validateMovieForm(form, config.DefaultMaxPictureBytes))
	assert.Equal(t, "This field is required.", fields["release_year"])

	// any whole number is a valid year
	for _, year := range []int{1799, 1895, 12000} {
		form = validMovieForm()
		form.ReleaseYear = year
		assert.NoError(t, validateMovieForm(form, config.DefaultMaxPictureBytes), year)
	}
}

func TestValidateMovieForm_PictureLimit(t *testing.T) {
	t.Run("6 MiB rejected", func(t *testing.T) {
		form := validMovieForm()
		form.Picture = &Upload{Filename: "big.png", ContentType: "image/png", Size: 6 * 1024 * 1024}

		fields := fieldErrors(t, validateMovieForm(form, config.DefaultMaxPictureBytes))
		assert.Equal(t, "File must be <= 5.2 MB", fields["picture"])
	})

	t.Run("4 MiB accepted", func(t *testing.T) {
		form := validMovieForm()
		form.Picture = pictureOfSize(4 * 1024 * 1024)
		assert.NoError(t, validateMovieForm(form, config.DefaultMaxPictureBytes))
	})

	t.Run("exactly at the limit accepted", func(t *testing.T) {
		form := validMovieForm()
		form.Picture = pictureOfSize(int(config.DefaultMaxPictureBytes))
		assert.NoError(t, validateMovieForm(form, config.DefaultMaxPictureBytes))
	})

	t.Run("read bytes count even if the declared size lies", func(t *testing.T) {
		form := validMovieForm()
		form.Picture = pictureOfSize(2048)
		form.Picture.Size = 10
		fields := fieldErrors(t, validateMovieForm(form, 1024))
		assert.Contains(t, fields, "picture")
	})

	t.Run("empty file rejected", func(t *testing.T) {
		form := validMovieForm()
		form.Picture = &Upload{Filename: "empty.png", ContentType: "image/png"}
		fields := fieldErrors(t, validateMovieForm(form, config.DefaultMaxPictureBytes))
		assert.Equal(t, "The submitted file is empty.", fields["picture"])
	})
}

func TestValidateReviewForm(t *testing.T) {
	fields := fieldErrors(t, validateReviewForm(&ReviewForm{Text: "Too good", Rating: 6}))
	assert.Equal(t, "Rating must be between 1 and 5.", fields["rating"])

	fields = fieldErrors(t, validateReviewForm(&ReviewForm{Text: "Meh", Rating: 0}))
	assert.Equal(t, "Rating must be between 1 and 5.", fields["rating"])

	fields = fieldErrors(t, validateReviewForm(&ReviewForm{Text: "   ", Rating: 3}))
	assert.Equal(t, "This field is required.", fields["text"])

	assert.NoError(t, validateReviewForm(&ReviewForm{Text: "Masterpiece", Rating: 5}))
	assert.NoError(t, validateReviewForm(&ReviewForm{Text: "Awful", Rating: 1}))
}

func TestPictureContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", pictureContentType(&Upload{ContentType: "image/jpeg", Data: pngHeader}))
	assert.Equal(t, "image/png", pictureContentType(&Upload{ContentType: "application/octet-stream", Data: pngHeader}))
	assert.Equal(t, "image/png", pictureContentType(&Upload{Data: pngHeader}))
}
