package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/felixge/fgprof"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/epmviz/backend/internal/core/scene"
)

const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case FormatJSON, FormatMsgpack:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q: must be %q or %q", s, FormatJSON, FormatMsgpack)
	}
}

// Encode writes r in the given format. msgpack output uses the same field
// names as the JSON output.
func Encode(w io.Writer, r *scene.Renderable, format string) error {
	switch format {
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(r)
	default:
		return json.NewEncoder(w).Encode(r)
	}
}

func serveDebug(addr string) {
	http.DefaultServeMux.Handle("/debug/fgprof", fgprof.Handler())
	go func() {
		log.Print(http.ListenAndServe(addr, nil))
	}()
}

func run(ctx context.Context, deps CommandDeps, model, out, format string) error {
	rendered, err := deps.SceneService.Render(ctx, "", model)
	if err != nil {
		return errors.Wrap(err, "render scene")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, rendered.Renderable, format); err != nil {
		return errors.Wrap(err, "encode scene")
	}

	if out == "-" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "write scene")
	}

	log.Info().
		Str("evt.name", "cli.render").
		Str("out", out).
		Str("format", format).
		Str("build", rendered.Renderable.BuildID).
		Int("turns", len(rendered.Renderable.Frames)).
		Int("bytes", buf.Len()).
		Msg("scene written")
	return nil
}
