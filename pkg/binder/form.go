package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms
// before spilling to disk (10 MB).
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// request bodies to a struct.
//
// Supported struct tags:
//   - `form:"name"` binds to form field "name"
//   - `file:"name"` binds uploaded file "name" to a *multipart.FileHeader
//   - a tag value of "-" skips the field
//
// Form fields may be string, bool, int, or pointers to those for optional
// values. Uploaded filenames are sanitized to their base name so binding
// never yields a path-traversing filename.
func Form(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: malformed content type %q", ErrInvalidForm, contentType)
	}

	var values map[string][]string
	var files map[string][]*multipart.FileHeader

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		values = r.Form

	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		values = r.MultipartForm.Value
		files = r.MultipartForm.File

	default:
		return fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}

	return bind(v, values, files)
}

func bind(v any, values map[string][]string, files map[string][]*multipart.FileHeader) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidForm)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidForm)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		if tag := fieldType.Tag.Get("form"); tag != "" && tag != "-" {
			name := tag
			if idx := strings.Index(tag, ","); idx != -1 {
				name = tag[:idx]
			}
			if vals, ok := values[name]; ok && len(vals) > 0 {
				if err := setValue(field, vals[0]); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, fieldType.Name, err)
				}
			}
		}

		if tag := fieldType.Tag.Get("file"); tag != "" && tag != "-" && files != nil {
			if headers, ok := files[tag]; ok && len(headers) > 0 {
				if err := setFile(field, headers[0]); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, fieldType.Name, err)
				}
			}
		}
	}

	return nil
}

func setValue(field reflect.Value, raw string) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		field = field.Elem()
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		// HTML checkboxes submit "on"; accept it alongside strconv forms.
		if raw == "on" {
			field.SetBool(true)
			return nil
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", raw)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}

func setFile(field reflect.Value, fh *multipart.FileHeader) error {
	if field.Type() != reflect.TypeOf((*multipart.FileHeader)(nil)) {
		return fmt.Errorf("file field must be *multipart.FileHeader, got %s", field.Type())
	}
	fh.Filename = sanitizeFilename(fh.Filename)
	field.Set(reflect.ValueOf(fh))
	return nil
}

// sanitizeFilename strips path components and null bytes from an uploaded
// filename to prevent path traversal when the name is echoed downstream.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")
	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
