package settings

import (
	"path"

	"github.com/goccy/go-json"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileLog appends json lines to a rotating file, written from a buffered channel
// so request handlers never wait on disk.
type FileLog struct {
	lines chan []byte
	done  chan struct{}
}

// restapi requests answered with a status below 400
var LogRestapiOk *FileLog

// restapi requests answered with a status of 400 or above
var LogRestapiErr *FileLog

// one summary per source read in stream mode
var LogStream *FileLog

// folder the current file logs were opened in
var fileLogPath string

func NewFileLog(filename string) *FileLog {
	out := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    2, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	fl := &FileLog{lines: make(chan []byte, 64), done: make(chan struct{})}
	go func() {
		defer close(fl.done)
		for line := range fl.lines {
			if _, err := out.Write(line); err != nil {
				Logger.Warn().Err(err).Int("bytes", len(line)).Str("file", filename).Msg("could not write log line to file")
			}
		}
		if err := out.Close(); err != nil {
			Logger.Warn().Err(err).Str("file", filename).Msg("could not close log file")
		}
	}()
	return fl
}

// Write queues one line, a newline is added.
func (fl *FileLog) Write(line []byte) {
	if len(line) == 0 {
		return
	}
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	fl.lines <- append(buf, '\n')
}

// WriteJSON queues v encoded as a single json line.
func (fl *FileLog) WriteJSON(v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		Logger.Warn().Err(err).Msg("could not encode log line")
		return
	}
	fl.Write(raw)
}

// Close writes any queued lines and closes the file. The log must not be written to afterwards.
func (fl *FileLog) Close() {
	close(fl.lines)
	<-fl.done
}

// openFileLogs opens the file logs under logpath, keeping the current ones if already open there.
func openFileLogs(logpath string) {
	if LogStream != nil && logpath == fileLogPath {
		return
	}
	CloseFileLogs()
	LogRestapiOk = NewFileLog(path.Join(logpath, "restapi.ok.log"))
	LogRestapiErr = NewFileLog(path.Join(logpath, "restapi.err.log"))
	LogStream = NewFileLog(path.Join(logpath, "stream.log"))
	fileLogPath = logpath
}

// CloseFileLogs flushes and closes all file logs.
func CloseFileLogs() {
	for _, fl := range []*FileLog{LogRestapiOk, LogRestapiErr, LogStream} {
		if fl != nil {
			fl.Close()
		}
	}
	LogRestapiOk, LogRestapiErr, LogStream = nil, nil, nil
	fileLogPath = ""
}
