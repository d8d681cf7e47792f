package command

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// startStatus 在 w 上显示等待动画，直到调用返回的 stop 函数
func startStatus(w io.Writer, message string) (stop func()) {
	if w == nil {
		return func() {}
	}

	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)

		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			fmt.Fprintf(w, "\r%c %s", spinnerFrames[i%len(spinnerFrames)], message)

			select {
			case <-done:
				fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", utf8.RuneCountInString(message)+2))
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-finished
		})
	}
}
