package channel

import (
	"errors"
	"fmt"
)

// Validate checks the assembled tree before it is written.
func Validate(ch *Channel) error {
	if ch == nil {
		return errors.New("channel is nil")
	}
	var errs []error
	if ch.Title == "" {
		errs = append(errs, errors.New("channel title is empty"))
	}
	if ch.SourceDomain == "" {
		errs = append(errs, errors.New("channel source domain is empty"))
	}
	if ch.SourceID == "" {
		errs = append(errs, errors.New("channel source id is empty"))
	}
	if ch.Language == "" {
		errs = append(errs, errors.New("channel language is empty"))
	}

	seen := make(map[string]struct{})
	claim := func(id, what string) {
		if id == "" {
			errs = append(errs, fmt.Errorf("%s has an empty source id", what))
			return
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("duplicate source id %q", id))
			return
		}
		seen[id] = struct{}{}
	}

	for _, topic := range ch.Children {
		claim(topic.SourceID, "topic "+topic.Title)
		if topic.Title == "" {
			errs = append(errs, fmt.Errorf("topic %q has no title", topic.SourceID))
		}
		for _, video := range topic.Children {
			claim(video.SourceID, "video "+video.Title)
			if err := video.License.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("video %q: %w", video.SourceID, err))
			}
			if !hasYouTubeFile(video) {
				errs = append(errs, fmt.Errorf("video %q has no youtube file", video.SourceID))
			}
		}
	}
	return errors.Join(errs...)
}

func hasYouTubeFile(v Video) bool {
	for _, f := range v.Files {
		if f.FileType == FileTypeYouTubeVideo && f.YouTubeID != "" {
			return true
		}
	}
	return false
}
