package render

import "strings"

const bulletMarkers = "•-"

// Bullet is one experience list item. Heading items render bold.
type Bullet struct {
	Text    string
	Heading bool
}

// key is the string used for achievement de-duplication.
func (b Bullet) key() string {
	if b.Heading {
		return "<strong>" + b.Text + "</strong>"
	}
	return b.Text
}

// Bullets derives the list items for one experience entry.
//
// Responsibilities containing a bullet glyph or hyphen are split per line:
// marker lines lose their markers, other lines ending in ":" become headings,
// remaining lines are kept as written. Text without markers is one item.
// Each achievement not already present is then inserted at the front, so
// achievements end up reversed ahead of the responsibilities.
func Bullets(responsibilities string, achievements []string) []Bullet {
	var bullets []Bullet
	if strings.ContainsAny(responsibilities, bulletMarkers) {
		for _, line := range strings.Split(responsibilities, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
				if cleaned := strings.TrimSpace(strings.TrimLeft(line, bulletMarkers)); cleaned != "" {
					bullets = append(bullets, Bullet{Text: cleaned})
				}
				continue
			}
			bullets = append(bullets, Bullet{Text: line, Heading: strings.HasSuffix(line, ":")})
		}
	} else {
		bullets = []Bullet{{Text: responsibilities}}
	}

	for _, achievement := range achievements {
		if containsBullet(bullets, achievement) {
			continue
		}
		bullets = append([]Bullet{{Text: achievement}}, bullets...)
	}
	return bullets
}

func containsBullet(bullets []Bullet, s string) bool {
	for _, b := range bullets {
		if b.key() == s {
			return true
		}
	}
	return false
}

// visibleBullets trims items and drops blank ones for output.
func visibleBullets(bullets []Bullet) []Bullet {
	out := make([]Bullet, 0, len(bullets))
	for _, b := range bullets {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}
		out = append(out, Bullet{Text: text, Heading: b.Heading})
	}
	return out
}
