package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
)

func multipartImage(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("not-really-a-png")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf, w.FormDataContentType()
}

func TestUploadStoresImageAndReturnsURL(t *testing.T) {
	app := newApp(t)
	body, ctype := multipartImage(t, "image", "pill.png")
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	m := decodeMap(t, resp)
	name, _ := m["filename"].(string)
	if name == "" || !strings.HasSuffix(name, ".png") {
		t.Fatalf("bad stored filename: %v", m)
	}
	if m["url"] != "/uploads/"+name {
		t.Fatalf("bad url: %v", m)
	}
}

func TestUploadWithoutFileIs400(t *testing.T) {
	app := newApp(t)
	body, ctype := multipartImage(t, "document", "pill.png")
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("want 400 when the image field is missing, got %d", resp.StatusCode)
	}
}

func TestUploadRejectsUnknownExtension(t *testing.T) {
	app := newApp(t)
	body, ctype := multipartImage(t, "image", "script.sh")
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("want 400 for unsupported extension, got %d", resp.StatusCode)
	}
}
