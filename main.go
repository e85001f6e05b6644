package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/keylegend/binding"
	"github.com/ByLCY/keylegend/geometry"
	"github.com/ByLCY/keylegend/legend"
	"github.com/ByLCY/keylegend/renderer"
	canvasrenderer "github.com/ByLCY/keylegend/renderer/canvas"
	"github.com/ByLCY/keylegend/theme"
	"github.com/ByLCY/keylegend/vial"
)

const (
	defaultInput  = "data/yivu40-250906.vil"
	defaultOutput = "output/keyboard_layout.png"
)

// options holds everything one run needs.
type options struct {
	Input     string
	Output    string
	Format    string
	Theme     string
	Debug     string
	LogLevel  string
	LogFormat string
}

func main() {
	opts, exit, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if exit {
		return
	}

	logger := newLogger(opts.LogLevel, opts.LogFormat, os.Stderr)
	if err := run(opts, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "生成键盘图例失败: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags 解析命令行参数；返回的布尔值表示应直接退出（如 -h）。
func parseFlags(args []string, output io.Writer) (*options, bool, error) {
	fs := flag.NewFlagSet("keylegend", flag.ContinueOnError)
	fs.SetOutput(output)

	input := fs.String("in", defaultInput, "Vial 配置文件（.vil）路径")
	out := fs.String("out", defaultOutput, "图像输出路径，支持 ${uid}、${version} 等占位符")
	format := fs.String("format", "", "输出格式：png 或 pdf（默认按扩展名推断）")
	themePath := fs.String("theme", "", "HCL 主题文件路径")
	debug := fs.String("debug", "", "图例调试 JSON 输出路径")
	logLevel := fs.String("log-level", "info", "日志级别：debug、info、warn、error")
	logFormat := fs.String("log-format", "text", "日志格式：text 或 json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		*input = fs.Arg(0)
	}

	level := strings.ToLower(*logLevel)
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	logFmt := strings.ToLower(*logFormat)
	if logFmt != "text" && logFmt != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	return &options{
		Input:     *input,
		Output:    *out,
		Format:    strings.ToLower(*format),
		Theme:     *themePath,
		Debug:     *debug,
		LogLevel:  level,
		LogFormat: logFmt,
	}, false, nil
}

// run 串联读取、解析、图例计算与渲染。
func run(opts *options, stdout io.Writer, logger *slog.Logger) error {
	th, err := theme.Load(opts.Theme)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return &FileReadError{Path: opts.Input, Err: err}
	}
	cfg, err := vial.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("解析 %s 失败: %w", opts.Input, err)
	}
	fmt.Fprintf(stdout, "读取成功: version=%d, uid=%d\n", cfg.Version, cfg.UID)
	fmt.Fprintf(stdout, "层数: %d\n", len(cfg.Layout))

	outputPath := binding.Interpolate(opts.Output, cfg.Fields())
	if left := binding.Placeholders(outputPath); len(left) > 0 {
		logger.Warn("Output path has unresolved placeholders.", "path", outputPath, "names", left)
	}

	format, err := resolveFormat(opts.Format, outputPath)
	if err != nil {
		return err
	}

	buildOpts := th.Options(geometry.DefaultMargin)
	sheet, err := legend.Build(cfg, geometry.Positions(buildOpts.Margin), buildOpts)
	if err != nil {
		return err
	}
	logger.Debug("Legend computed.", "keys", len(sheet.Keys), "width", sheet.Width, "height", sheet.Height)

	if opts.Debug != "" {
		if err := writeDebug(sheet, opts.Debug); err != nil {
			return err
		}
	}

	var r renderer.Renderer = canvasrenderer.NewRenderer(canvasrenderer.Options{
		Format: format,
		Font:   th.Font,
	})
	if err := writeImage(r, sheet, outputPath); err != nil {
		return err
	}
	logger.Debug("Image written.", "path", outputPath, "format", format)

	fmt.Fprintf(stdout, "已生成键盘图例: %s\n", outputPath)
	return nil
}

// resolveFormat 优先使用显式格式，否则按扩展名推断，未知扩展名按 PNG 处理。
func resolveFormat(explicit, path string) (canvasrenderer.Format, error) {
	if explicit != "" {
		return canvasrenderer.ParseFormat(explicit)
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return canvasrenderer.FormatPDF, nil
	}
	return canvasrenderer.FormatPNG, nil
}

func writeImage(r renderer.Renderer, sheet *legend.Sheet, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &DirectoryCreateError{Path: dir, Err: err}
	}

	img, err := r.Render(sheet)
	if err != nil {
		var fontErr *canvasrenderer.FontLoadError
		if errors.As(err, &fontErr) {
			return err
		}
		return &ImageWriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return &ImageWriteError{Path: path, Err: err}
	}
	return nil
}

func writeDebug(sheet *legend.Sheet, debugPath string) error {
	dir := filepath.Dir(debugPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &DirectoryCreateError{Path: dir, Err: err}
	}
	if err := legend.WriteDebugJSON(sheet, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// newLogger creates a slog.Logger without touching the global default.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
