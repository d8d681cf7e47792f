package file

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/lithammer/shortuuid/v4"
	"github.com/mylxsw/asteria/log"
	"github.com/pkg/errors"
)

var (
	// ErrSSMLNotFound SSML 文件不存在
	ErrSSMLNotFound = errors.New("ssml file not found")
	// ErrInvalidInput SSML 输入路径不可用（目录、无读取权限等）
	ErrInvalidInput = errors.New("invalid ssml input")
)

// InputError 输入文件相关的错误，错误信息中包含文件路径
type InputError struct {
	Path   string
	Reason string
	// Kind 为 ErrSSMLNotFound 或 ErrInvalidInput
	Kind  error
	cause error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

func (e *InputError) Unwrap() []error {
	return []error{e.Kind, e.cause}
}

func notFound(path string, cause error) *InputError {
	return &InputError{Path: path, Reason: "SSML file not found", Kind: ErrSSMLNotFound, cause: cause}
}

// CheckInput 校验输入文件：必须存在、不是目录并且可读
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(path, err)
		}

		return &InputError{Path: path, Reason: "SSML file is not accessible", Kind: ErrInvalidInput, cause: err}
	}

	if info.IsDir() {
		return &InputError{Path: path, Reason: "SSML path is a directory", Kind: ErrInvalidInput}
	}

	f, err := os.Open(path)
	if err != nil {
		return &InputError{Path: path, Reason: "SSML file is not readable", Kind: ErrInvalidInput, cause: err}
	}

	return f.Close()
}

// ReadSSML 读取完整的 SSML 文件内容，内容必须是 UTF-8 编码
func ReadSSML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFound(path, err)
		}

		return "", errors.Wrapf(err, "read ssml file %s", path)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("decode ssml file %s: invalid utf-8 content", path)
	}

	return string(data), nil
}

// WriteAudio 将音频数据写入 path，父目录不存在时自动创建，已存在的文件会被整体替换
//
// 数据先写入同目录下的临时文件，成功后再重命名为目标文件，写入失败时不会留下不完整的文件。
// path 为符号链接时写入链接指向的文件，已存在文件的权限保持不变
func WriteAudio(path string, data []byte) error {
	target, err := resolveLink(path)
	if err != nil {
		return errors.Wrapf(err, "resolve output path %s", path)
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return errors.Wrapf(err, "create output directory %s", dir)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(target), shortuuid.New()))
	if err := os.WriteFile(tmp, data, mode); err != nil {
		removeTemp(tmp)
		return errors.Wrapf(err, "write audio file %s", path)
	}

	// WriteFile 创建文件时受 umask 影响
	if err := os.Chmod(tmp, mode); err != nil {
		removeTemp(tmp)
		return errors.Wrapf(err, "write audio file %s", path)
	}

	if err := os.Rename(tmp, target); err != nil {
		removeTemp(tmp)
		return errors.Wrapf(err, "write audio file %s", path)
	}

	return nil
}

const maxLinkHops = 40

// resolveLink 沿符号链接找到最终的文件路径，链接指向的文件可以不存在
func resolveLink(path string) (string, error) {
	current := path
	for i := 0; i < maxLinkHops; i++ {
		info, err := os.Lstat(current)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return current, nil
			}

			return "", err
		}

		if info.Mode()&fs.ModeSymlink == 0 {
			return current, nil
		}

		link, err := os.Readlink(current)
		if err != nil {
			return "", err
		}

		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(current), link)
		}
		current = link
	}

	return "", fmt.Errorf("too many levels of symbolic links: %s", path)
}

func removeTemp(tmp string) {
	if err := os.Remove(tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warningf("remove temp file %s failed: %v", tmp, err)
	}
}
