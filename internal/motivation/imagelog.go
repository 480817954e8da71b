package motivation

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Разделитель записей в журнале - формат унаследован от исходного блога:
// "ссылка,дата><ссылка,дата><..."
const recordSep = "><"

type Record struct {
	Link string
	Date string // clock.LogDateLayout
}

// ImageLog — плоский append-only файл с уже показанными картинками
type ImageLog struct {
	mu   sync.Mutex
	path string
}

func NewImageLog(path string) *ImageLog {
	return &ImageLog{path: path}
}

// Records читает весь журнал. Отсутствующий файл - пустой журнал
func (l *ImageLog) Records() ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.recordsLocked()
}

func (l *ImageLog) recordsLocked() ([]Record, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read image log: %w", err)
	}

	var records []Record
	for _, raw := range strings.Split(string(data), recordSep) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		// ссылка может содержать запятые - дата после последней
		idx := strings.LastIndex(raw, ",")
		if idx < 0 {
			continue
		}
		records = append(records, Record{
			Link: raw[:idx],
			Date: raw[idx+1:],
		})
	}

	return records, nil
}

// LastRecord возвращает последнюю запись журнала
func (l *ImageLog) LastRecord() (Record, bool, error) {
	records, err := l.Records()
	if err != nil {
		return Record{}, false, err
	}
	if len(records) == 0 {
		return Record{}, false, nil
	}
	return records[len(records)-1], true, nil
}

// Append дописывает запись в конец журнала
func (l *ImageLog) Append(link, date string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open image log: %w", err)
	}
	defer f.Close()

	_, err = f.WriteString(link + "," + date + recordSep)
	if err != nil {
		return fmt.Errorf("could not append to image log: %w", err)
	}

	return nil
}
