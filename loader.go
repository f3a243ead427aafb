package novelpub

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// chapterFilePattern matches per-chapter text files named by convention,
// e.g. "chapter_12.txt".
var chapterFilePattern = regexp.MustCompile(`^chapter_(\d+)\.txt$`)

// chapterTitlePattern matches a "Chapter N" heading prefix on the first
// content line, with an optional separator before the title proper.
var chapterTitlePattern = regexp.MustCompile(`^Chapter\s+(\d+)\s*[:.\-]?\s*`)

// Loader reads a directory of per-chapter text files and feeds them into
// a Book. Unreadable chapter files are logged and skipped rather than
// failing the whole export.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// ExportNovel assembles all chapters found under <novelDir>/chapters into
// an ePub archive at outputPath. It returns ErrChapterDirNotFound when
// the chapters directory is missing and ErrNoChapters when no usable
// chapter files are found.
func (l *Loader) ExportNovel(novelDir, outputPath, title, author string) error {
	book := NewBook(title, author)

	chapters, err := l.LoadChapters(filepath.Join(novelDir, "chapters"))
	if err != nil {
		return err
	}
	for _, ch := range chapters {
		book.AddChapter(ch.Number, ch.Title, ch.Content)
	}

	return book.ExportTo(outputPath)
}

// LoadChapters reads every chapter_<N>.txt file in chaptersDir and
// returns the parsed chapters in ascending number order.
func (l *Loader) LoadChapters(chaptersDir string) ([]Chapter, error) {
	entries, err := os.ReadDir(chaptersDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrChapterDirNotFound, chaptersDir)
		}
		return nil, fmt.Errorf("novelpub: read chapters directory: %w", err)
	}

	var chapters []Chapter
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := chapterFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		path := filepath.Join(chaptersDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			l.logger.Warn("skipping unreadable chapter file",
				zap.String("path", path), zap.Error(err))
			continue
		}

		title, content := parseChapterText(number, string(data))
		chapters = append(chapters, Chapter{
			Number:  number,
			Title:   title,
			Content: content,
		})
	}

	if len(chapters) == 0 {
		return nil, ErrNoChapters
	}

	sort.Slice(chapters, func(i, j int) bool {
		return chapters[i].Number < chapters[j].Number
	})
	return chapters, nil
}

// parseChapterText extracts the chapter title from the first non-blank
// line of raw chapter text. A "Chapter <number>" heading prefix matching
// the expected number is stripped; otherwise the whole line is used as
// the title. The remaining lines become the chapter content.
func parseChapterText(number int, text string) (title, content string) {
	lines := strings.Split(text, "\n")

	contentStart := 0
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := chapterTitlePattern.FindStringSubmatch(line); m != nil && m[1] == strconv.Itoa(number) {
			title = strings.TrimSpace(line[len(m[0]):])
		} else {
			title = line
		}
		contentStart = i + 1
		break
	}

	if title == "" {
		title = fmt.Sprintf("Chapter %d", number)
	}

	return title, strings.Join(lines[contentStart:], "\n")
}
