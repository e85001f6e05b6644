package main

import "fmt"

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// FileReadError 表示输入文件不存在或无法读取。
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("无法读取配置文件 %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// DirectoryCreateError 表示无法创建输出目录。
type DirectoryCreateError struct {
	Path string
	Err  error
}

func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("创建输出目录 %s 失败: %v", e.Path, e.Err)
}

func (e *DirectoryCreateError) Unwrap() error { return e.Err }

// ImageWriteError 表示图像编码或写入失败。
type ImageWriteError struct {
	Path string
	Err  error
}

func (e *ImageWriteError) Error() string {
	return fmt.Sprintf("写入图像 %s 失败: %v", e.Path, e.Err)
}

func (e *ImageWriteError) Unwrap() error { return e.Err }
