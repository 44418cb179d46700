package host

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	"onu-go/pkg/log"
	"onu-go/pkg/runtime"
)

// Run executes the compiled guest at path with the runtime linked in.
// The guest's broadcasts output goes through env. The entry export named
// in cfg is invoked with no arguments; a guest exiting through WASI
// proc_exit with status 0 counts as success.
func Run(ctx context.Context, path string, env runtime.Environment, cfg *Config) error {
	wasm, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read guest module %s: %w", path, err)
	}

	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	if cfg.EnableWASI {
		wasi_snapshot_preview1.MustInstantiate(ctx, r)
	}
	if _, err := Instantiate(ctx, r, env, cfg); err != nil {
		return err
	}

	log.Info().Str("module", path).Str("entry", cfg.Entry).Msg("running guest")

	mod, err := r.Instantiate(ctx, wasm)
	if err != nil {
		// _start-style guests run at instantiation and may exit through
		// WASI; status 0 is a normal completion.
		if exitErr, ok := err.(*sys.ExitError); ok && exitErr.ExitCode() == 0 {
			return nil
		}
		return fmt.Errorf("failed to instantiate guest %s: %w", path, err)
	}
	defer mod.Close(ctx)

	// wazero invokes _start during instantiation; only a differently
	// named entry still needs an explicit call.
	if cfg.Entry != "" && cfg.Entry != "_start" {
		if err := callEntry(ctx, mod, cfg.Entry); err != nil {
			log.Error().Err(err).Str("module", path).Msg("guest failed")
			return err
		}
	}
	log.Info().Str("module", path).Msg("guest finished")
	return nil
}

func callEntry(ctx context.Context, mod api.Module, entry string) error {
	fn := mod.ExportedFunction(entry)
	if fn == nil {
		return fmt.Errorf("guest does not export entry function %q", entry)
	}
	if _, err := fn.Call(ctx); err != nil {
		if exitErr, ok := err.(*sys.ExitError); ok && exitErr.ExitCode() == 0 {
			return nil
		}
		return fmt.Errorf("entry %q failed: %w", entry, err)
	}
	return nil
}
