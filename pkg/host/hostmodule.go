// Package host exposes the Ọ̀nụ runtime primitives to compiled guest
// modules. The compiler emits calls to raw external symbols (as-text,
// joined-with, len, char-at, init-of, char-from-code, and puts for the
// broadcasts builtin); this package registers each of them on a wazero
// host module so a guest built from Ọ̀nụ source links against the same
// ABI the C runtime provided: 64-bit integers, NUL-terminated strings in
// guest linear memory, every returned string freshly allocated through
// the guest's exported allocator and owned by the guest afterwards.
//
// Allocation or memory-access failure inside a host call is fatal to the
// guest invocation (a panic unwinding into the wazero call error), which
// mirrors the original runtime terminating the process.
package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"onu-go/pkg/log"
	"onu-go/pkg/runtime"
	"onu-go/pkg/textbuf"
)

// hostModule carries the per-instantiation state the exported functions
// need: the output environment and the name of the guest allocator.
type hostModule struct {
	env   runtime.Environment
	alloc string
}

// Instantiate registers the runtime ABI on r under cfg.ModuleName and
// instantiates it. Guests importing from that module (the compiler uses
// "env") resolve their runtime symbols against the returned instance.
func Instantiate(ctx context.Context, r wazero.Runtime, env runtime.Environment, cfg *Config) (api.Module, error) {
	h := &hostModule{env: env, alloc: cfg.AllocExport}
	mod, err := r.NewHostModuleBuilder(cfg.ModuleName).
		NewFunctionBuilder().WithFunc(h.asText).Export("as-text").
		NewFunctionBuilder().WithFunc(h.joinedWith).Export("joined-with").
		NewFunctionBuilder().WithFunc(h.strLen).Export("len").
		NewFunctionBuilder().WithFunc(h.charAt).Export("char-at").
		NewFunctionBuilder().WithFunc(h.initOf).Export("init-of").
		NewFunctionBuilder().WithFunc(h.charFromCode).Export("char-from-code").
		NewFunctionBuilder().WithFunc(h.puts).Export("broadcasts").
		NewFunctionBuilder().WithFunc(h.puts).Export("puts").
		Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate host module %q: %w", cfg.ModuleName, err)
	}
	return mod, nil
}

// --- exported runtime symbols (wasm32: pointers are u32, ints are i64) ---

func (h *hostModule) asText(ctx context.Context, mod api.Module, n int64) uint32 {
	return h.writeOwned(ctx, mod, runtime.AsText(n))
}

func (h *hostModule) joinedWith(ctx context.Context, mod api.Module, a, b uint32) uint32 {
	bufA := h.readBuf(mod, a)
	bufB := h.readBuf(mod, b)
	return h.writeOwned(ctx, mod, runtime.JoinedWith(bufA, bufB))
}

func (h *hostModule) strLen(_ context.Context, mod api.Module, s uint32) int64 {
	return runtime.Len(h.readBuf(mod, s))
}

func (h *hostModule) charAt(_ context.Context, mod api.Module, s uint32, idx int64) int64 {
	return runtime.CharAt(h.readBuf(mod, s), idx)
}

func (h *hostModule) initOf(ctx context.Context, mod api.Module, s uint32) uint32 {
	return h.writeOwned(ctx, mod, runtime.InitOf(h.readBuf(mod, s)))
}

func (h *hostModule) charFromCode(ctx context.Context, mod api.Module, code int64) uint32 {
	return h.writeOwned(ctx, mod, runtime.CharFromCode(code))
}

// puts matches the libc signature the compiler lowers broadcasts to:
// one pointer in, an i32 out (0 on success).
func (h *hostModule) puts(_ context.Context, mod api.Module, s uint32) int32 {
	runtime.Broadcasts(h.env, h.readBuf(mod, s))
	return 0
}

// --- guest memory plumbing ---

// readBuf reads the NUL-terminated string at off into a fresh buffer.
func (h *hostModule) readBuf(mod api.Module, off uint32) textbuf.Buf {
	b, err := readCString(mod.Memory(), off)
	if err != nil {
		log.Error().Err(err).Uint32("offset", off).Msg("guest passed an unreadable string pointer")
		panic(err)
	}
	return textbuf.FromBytes(b)
}

// writeOwned allocates len+1 bytes through the guest allocator, writes the
// buffer plus terminator, and returns the guest pointer. The guest owns
// the allocation from here on.
func (h *hostModule) writeOwned(ctx context.Context, mod api.Module, buf textbuf.Buf) uint32 {
	alloc := mod.ExportedFunction(h.alloc)
	if alloc == nil {
		err := fmt.Errorf("guest does not export allocator %q", h.alloc)
		log.Error().Err(err).Msg("cannot return a runtime string to the guest")
		panic(err)
	}
	size := uint64(buf.Len()) + 1
	results, err := alloc.Call(ctx, size)
	if err != nil {
		panic(fmt.Errorf("guest allocator %q failed for %d bytes: %w", h.alloc, size, err))
	}
	ptr := uint32(results[0])
	if err := writeCString(mod.Memory(), ptr, buf.Bytes()); err != nil {
		panic(err)
	}
	return ptr
}
