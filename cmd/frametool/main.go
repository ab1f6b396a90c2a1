// Command frametool decodes one or more length-prefixed RSocket frame
// files and prints each frame's fields and, with -d, a hex dump of the
// frame re-encoded with the selected encoder set.
// It exists to exercise the codec end to end, not as a production
// client or server.
package main

import (
	"fmt"
	"io/ioutil"

	"github.com/mkideal/cli"
	"github.com/panjf2000/ants"
	"go.uber.org/multierr"

	"github.com/rsocket/rsocket-codec/core/framing"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/framer"
	"github.com/rsocket/rsocket-codec/internal/common"
	"github.com/rsocket/rsocket-codec/logger"
)

type opts struct {
	cli.Helper
	Debug   bool   `cli:"d, debug" usage:"Debug output"`
	Encoder string `cli:"e, encoder" name:"set" usage:"Encoder set to use [text|binary|cbor]" dft:"text"`
	Workers int    `cli:"w, workers" name:"count" usage:"Worker pool size for batch decode" dft:"8"`
}

func (o *opts) encoderSet() (encoding.Set, error) {
	switch o.Encoder {
	case "text", "":
		return encoding.TextSet, nil
	case "binary":
		return encoding.BinarySet, nil
	case "cbor":
		return encoding.CBORSet, nil
	default:
		return encoding.Set{}, fmt.Errorf("unknown encoder set %q", o.Encoder)
	}
}

func main() {
	cli.Run(new(opts), func(ctx *cli.Context) error {
		o := ctx.Argv().(*opts)
		if o.Debug {
			logger.SetLevel(logger.LevelDebug)
		}
		set, err := o.encoderSet()
		if err != nil {
			return err
		}
		paths := ctx.Args()
		if len(paths) == 0 {
			return fmt.Errorf("usage: frametool [flags] <file>...")
		}
		return decodeFiles(paths, set, o.Workers)
	}, "decode length-prefixed RSocket frame files")
}

// decodeFiles decodes every path concurrently through a bounded worker
// pool, collecting every failure instead of stopping at the first one.
func decodeFiles(paths []string, set encoding.Set, workers int) error {
	var (
		errs  error
		errCh = make(chan error, len(paths))
	)
	pool, err := ants.NewPool(workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	for _, path := range paths {
		p := path
		submitErr := pool.Submit(func() {
			errCh <- decodeFile(p, set)
		})
		if submitErr != nil {
			errCh <- submitErr
		}
	}
	for range paths {
		if err := <-errCh; err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func decodeFile(path string, set encoding.Set) error {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	frames, leftover, err := framer.ParseStream(raw, set, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if len(leftover) > 0 {
		logger.Warnf("%s: %d trailing bytes did not form a complete frame", path, len(leftover))
	}
	for i, f := range frames {
		printFrame(path, i, f, set)
	}
	return nil
}

func printFrame(path string, index int, f framing.Frame, set encoding.Set) {
	h := f.Header()
	fmt.Printf("%s[%d]: type=%s streamId=%d flags=%s\n", path, index, h.Type(), h.StreamID(), h.Flag())
	switch v := f.(type) {
	case *framing.SetupFrame:
		fmt.Printf("  version=%s keepAlive=%d lifetime=%d dataMimeType=%s metadataMimeType=%s\n",
			v.Version(), v.KeepAlive(), v.Lifetime(), v.DataMimeType(), v.MetadataMimeType())
	case *framing.ErrorFrame:
		fmt.Printf("  code=%s message=%s\n", v.Code(), v.Message())
	case *framing.LeaseFrame:
		fmt.Printf("  ttl=%d requestCount=%d\n", v.TTL(), v.RequestCount())
	case *framing.KeepaliveFrame:
		fmt.Printf("  lastReceivedPosition=%d\n", v.LastReceivedPosition())
	}
	if !logger.IsDebugEnabled() {
		return
	}
	body, err := framing.Encode(f, set)
	if err != nil {
		logger.Warnf("%s[%d]: re-encode for hex dump failed: %v", path, index, err)
		return
	}
	if dump, err := common.PrettyHexDump(body); err == nil {
		fmt.Println(dump)
	}
}
