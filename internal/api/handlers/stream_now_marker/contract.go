package stream_now_marker

// StreamRecorder учет открытых потоков маркера
type StreamRecorder interface {
	StreamOpened()
	StreamClosed()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
