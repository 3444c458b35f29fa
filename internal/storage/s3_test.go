package storage

import "testing"

func TestFolderForMIME(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"video/mp4", "videos"},
		{"image/png", "images"},
		{"application/pdf", "pdfs"},
		{"text/vtt", "subtitles"},
		{"application/octet-stream", "others"},
		{"", "others"},
	}
	for _, tt := range tests {
		if got := FolderForMIME(tt.mime); got != tt.want {
			t.Errorf("FolderForMIME(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestResolveFolder(t *testing.T) {
	// explicit folder wins even when the MIME maps elsewhere
	if got, ok := ResolveFolder("subtitles", "application/octet-stream"); !ok || got != "subtitles" {
		t.Fatalf("ResolveFolder(subtitles) = %q, %v", got, ok)
	}
	// empty request falls back to the MIME mapping
	if got, ok := ResolveFolder("", "text/vtt"); !ok || got != "subtitles" {
		t.Fatalf("ResolveFolder(\"\") = %q, %v", got, ok)
	}
	// an unknown folder is rejected rather than written as a stray prefix
	if _, ok := ResolveFolder("secrets", "image/png"); ok {
		t.Fatal("ResolveFolder(secrets) accepted")
	}
}
