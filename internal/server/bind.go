package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const maxBodyBytes = 1 << 20

// binder decodes and validates JSON request bodies.
type binder struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newBinder() *binder {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	trans, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())

	// prefer json tag names in messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "-" || tag == "" {
			return fld.Name
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		return tag
	})
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	return &binder{validate: v, trans: trans}
}

// parseJSON decodes exactly one JSON value from the body into dst and
// validates it. Returned errors are safe to show to clients.
func (b *binder) parseJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return fmt.Errorf("invalid JSON: %v", err)
	}
	if dec.More() {
		return errors.New("unexpected trailing data")
	}

	if err := b.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.New(verrs[0].Translate(b.trans))
		}
		return err
	}
	return nil
}
