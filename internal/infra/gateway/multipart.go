package gateway

import (
	"bytes"
	"mime/multipart"

	"freshdeal/internal/errors"
)

// FilePart is one uploaded file of a multipart form.
type FilePart struct {
	Field    string
	Filename string
	Content  []byte
}

// MultipartForm is the body of calls that upload images.
type MultipartForm struct {
	Fields map[string][]string
	Files  []FilePart
}

// Set replaces the values of a field.
func (f *MultipartForm) Set(field string, values ...string) {
	if f.Fields == nil {
		f.Fields = make(map[string][]string)
	}
	f.Fields[field] = values
}

func (f *MultipartForm) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for field, values := range f.Fields {
		for _, value := range values {
			if err := writer.WriteField(field, value); err != nil {
				return nil, "", errors.Wrapf(err, "write field %s", field)
			}
		}
	}

	for _, file := range f.Files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, "", errors.Wrapf(err, "create form file %s", file.Field)
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", errors.Wrapf(err, "write form file %s", file.Field)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}

	return buf, writer.FormDataContentType(), nil
}
