package channel

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"ytchef/internal/config"
	"ytchef/internal/descriptions"
	"ytchef/internal/language"
	"ytchef/internal/playlist"
	"ytchef/internal/testsupport"
	"ytchef/internal/youtube"
)

type stubFetcher struct {
	docs  map[string]*youtube.PlaylistDocument
	calls int
}

func (s *stubFetcher) FetchPlaylist(_ context.Context, id string) (*youtube.PlaylistDocument, error) {
	s.calls++
	doc, ok := s.docs[id]
	if !ok {
		return nil, &youtube.FetchError{URL: youtube.PlaylistURL(id), Err: youtube.ErrUnavailable}
	}
	clone := *doc
	clone.Children = slices.Clone(doc.Children)
	return &clone, nil
}

func (s *stubFetcher) FetchVideo(context.Context, string) (*youtube.VideoRecord, error) {
	return nil, youtube.ErrUnavailable
}

func strPtr(s string) *string { return &s }

func fixture(t *testing.T, playlists []config.Playlist) (*config.Config, *stubFetcher, *playlist.Manager) {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithPlaylists(playlists...))
	fetcher := &stubFetcher{docs: map[string]*youtube.PlaylistDocument{
		"PLen": {ID: "PLen", Title: "English", Children: []youtube.VideoRecord{
			{ID: "aaaaaaaaaaa", Title: "Handwashing", Thumbnail: "https://i.ytimg.com/a.jpg"},
			{ID: "bbbbbbbbbbb", Title: "Not curated"},
			{ID: "aaaaaaaaaaa", Title: "Handwashing (dup)"},
		}},
		"PLka": {ID: "PLka", Children: []youtube.VideoRecord{
			{ID: "ccccccccccc", Title: "Kachin video"},
		}},
	}}
	cache := testsupport.MustOpenCache(t, cfg)
	return cfg, fetcher, playlist.NewManager(cache, fetcher, nil)
}

func testTable() *descriptions.Table {
	return descriptions.FromEntries(map[string]descriptions.Entry{
		"aaaaaaaaaaa": {Description: strPtr("Wash your hands")},
		"ccccccccccc": {Description: nil},
		"bbbbbbbbbbb": {Description: strPtr("exclude")},
	})
}

func TestBuild(t *testing.T) {
	cfg, _, mgr := fixture(t, []config.Playlist{
		{Language: "en", IDs: []string{"PLen"}},
		{Language: "Kachin", IDs: []string{"PLka"}},
	})
	res, err := NewBuilder(cfg, mgr, testTable(), false, nil).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	ch := res.Channel
	if ch.Title != cfg.Channel.Name || ch.SourceID != "refugee-response" || ch.SourceDomain != "refugeeresponse.org" {
		t.Fatalf("channel header = %+v", ch)
	}
	if len(ch.Children) != 2 {
		t.Fatalf("topics = %d", len(ch.Children))
	}

	en := ch.Children[0]
	english := language.MustResolve("en")
	if en.SourceID != "refugeeresponse-child-topic-"+english.Name || en.Title != english.NativeName || en.Language != "en" {
		t.Fatalf("english topic = %+v", en)
	}
	if len(en.Children) != 1 {
		t.Fatalf("english videos = %d, want 1", len(en.Children))
	}
	v := en.Children[0]
	if v.SourceID != "refugee-response-"+english.Name+"-aaaaaaaaaaa" {
		t.Fatalf("video source id = %q", v.SourceID)
	}
	if v.Description != "Wash your hands" || v.Title != "Handwashing" || v.Thumbnail != "https://i.ytimg.com/a.jpg" {
		t.Fatalf("video = %+v", v)
	}
	if v.License.ID != LicenseCCBYNCND || v.License.CopyrightHolder != "Refugee Response" {
		t.Fatalf("license = %+v", v.License)
	}
	if len(v.Files) != 1 || v.Files[0].YouTubeID != "aaaaaaaaaaa" || v.Files[0].FileType != FileTypeYouTubeVideo {
		t.Fatalf("files = %+v", v.Files)
	}

	ka := ch.Children[1]
	if ka.SourceID != "refugeeresponse-child-topic-Kachin" || ka.Title != "ကချင်ဘာသာ" || ka.Language != "und" {
		t.Fatalf("kachin topic = %+v", ka)
	}
	if len(ka.Children) != 1 || ka.Children[0].Description != "" {
		t.Fatalf("kachin videos = %+v", ka.Children)
	}

	if res.Topics[0].Excluded != 1 || res.Topics[0].Videos != 1 {
		t.Fatalf("english stats = %+v", res.Topics[0])
	}
	if ch.VideoCount() != 2 {
		t.Fatalf("VideoCount = %d", ch.VideoCount())
	}
	if err := Validate(ch); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestBuildUsesCacheUnlessBypassed(t *testing.T) {
	cfg, fetcher, mgr := fixture(t, []config.Playlist{{Language: "en", IDs: []string{"PLen"}}})
	ctx := context.Background()

	for range 2 {
		if _, err := NewBuilder(cfg, mgr, testTable(), false, nil).Build(ctx); err != nil {
			t.Fatalf("Build: %v", err)
		}
	}
	if fetcher.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", fetcher.calls)
	}
	res, err := NewBuilder(cfg, mgr, testTable(), true, nil).Build(ctx)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fetcher.calls != 2 || res.Topics[0].Cached {
		t.Fatalf("bypass build: calls=%d cached=%v", fetcher.calls, res.Topics[0].Cached)
	}
}

func TestBuildSkipsRepeatedVideos(t *testing.T) {
	cfg, _, mgr := fixture(t, []config.Playlist{{Language: "en", IDs: []string{"PLen"}}})
	ctx := context.Background()
	if _, err := mgr.FetchPlaylist(ctx, "en", "PLen", false); err != nil {
		t.Fatalf("FetchPlaylist: %v", err)
	}
	cache := testsupport.MustOpenCache(t, cfg)
	testsupport.MustSave(t, cache, "aaaaaaaaaaa", youtube.VideoRecord{ID: "aaaaaaaaaaa", Title: "Handwashing again"})
	for range 2 {
		if err := mgr.InsertVideo(ctx, "en", "aaaaaaaaaaa"); err != nil {
			t.Fatalf("InsertVideo: %v", err)
		}
	}

	res, err := NewBuilder(cfg, mgr, testTable(), false, nil).Build(ctx)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := Validate(res.Channel); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	en := res.Channel.Children[0]
	if len(en.Children) != 1 || en.Children[0].Title != "Handwashing" {
		t.Fatalf("english videos = %+v", en.Children)
	}
	// bbbbbbbbbbb is not curated; the two inserted copies repeat the first child.
	if res.Topics[0].Videos != 1 || res.Topics[0].Excluded != 3 {
		t.Fatalf("stats = %+v", res.Topics[0])
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name      string
		playlists []config.Playlist
		want      error
	}{
		{"unknown language", []config.Playlist{{Language: "klingonese", IDs: []string{"PLen"}}}, language.ErrUnknownLanguage},
		{"empty playlist ids", []config.Playlist{{Language: "en"}}, config.ErrNoPlaylistIDs},
		{"unavailable playlist", []config.Playlist{{Language: "en", IDs: []string{"PLgone"}}}, youtube.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, mgr := fixture(t, tt.playlists)
			_, err := NewBuilder(cfg, mgr, testTable(), false, nil).Build(context.Background())
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildRejectsUnknownLicense(t *testing.T) {
	cfg, _, mgr := fixture(t, nil)
	cfg.Channel.License = "WTFPL"
	if _, err := NewBuilder(cfg, mgr, testTable(), false, nil).Build(context.Background()); !errors.Is(err, ErrUnknownLicense) {
		t.Fatalf("error = %v, want ErrUnknownLicense", err)
	}
}

func TestNewLicense(t *testing.T) {
	lic, err := NewLicense("cc by-nc-nd", "Refugee Response")
	if err != nil || lic.ID != LicenseCCBYNCND {
		t.Fatalf("NewLicense = %+v, %v", lic, err)
	}
	if _, err := NewLicense("CC BY", ""); err == nil {
		t.Fatalf("expected missing copyright holder error")
	}
	if _, err := NewLicense("Public Domain", ""); err != nil {
		t.Fatalf("public domain: %v", err)
	}
	if _, err := NewLicense("Special Permissions", "x"); err == nil {
		t.Fatalf("special permissions without description should fail")
	}
}

func TestValidateReportsProblems(t *testing.T) {
	lic := License{ID: LicenseCCBY, CopyrightHolder: "x"}
	ch := &Channel{
		SourceDomain: "d",
		SourceID:     "c",
		Title:        "t",
		Language:     "en",
		Children: []Topic{{
			Kind:     KindTopic,
			SourceID: "topic",
			Title:    "Topic",
			Children: []Video{
				{SourceID: "v1", License: lic, Files: []VideoFile{{FileType: FileTypeYouTubeVideo, YouTubeID: "aaaaaaaaaaa"}}},
				{SourceID: "v1", License: lic, Files: []VideoFile{{FileType: FileTypeYouTubeVideo, YouTubeID: "bbbbbbbbbbb"}}},
				{SourceID: "v2", License: lic},
			},
		}},
	}
	err := Validate(ch)
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	msg := err.Error()
	for _, want := range []string{`duplicate source id "v1"`, `video "v2" has no youtube file`} {
		if !strings.Contains(msg, want) {
			t.Fatalf("missing %q in %q", want, msg)
		}
	}
	if err := Validate(&Channel{}); err == nil {
		t.Fatalf("empty channel should fail")
	}
}

func TestWriteTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chefdata", "channel_tree.json")
	ch := &Channel{SourceDomain: "d", SourceID: "c", Title: "t", Language: "mul", Children: []Topic{}}
	if err := WriteTree(path, ch); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got Channel
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.SourceID != "c" || got.Language != "mul" {
		t.Fatalf("tree = %+v", got)
	}
	if !strings.Contains(string(data), "\n  \"source_domain\"") {
		t.Fatalf("tree not indented: %s", data)
	}
}
