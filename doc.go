// Package nkgg is a software rendering backend for immediate-mode GUI
// toolkits. It replays a retained list of draw commands (rectangles,
// circles, polygons, text, images, scissor updates) onto a caller-owned
// pixel buffer, delegating all rasterization to gg and all font parsing
// and glyph rendering to gg's text stack.
//
// The package contains no rasterization of its own: it is a dispatch loop
// over a closed command set plus a small font/face cache. The toolkit
// builds a CommandList during its frame, the host calls Render once per
// frame, and the list is cleared afterwards so the next frame starts empty.
//
// # Architecture
//
// Three pieces cooperate:
//   - CommandList: ordered draw commands for one frame, built by the
//     toolkit through typed append methods.
//   - FontCache: deduplicating tables mapping a font file path to a loaded
//     face and a (path, size) pair to a ready Font handle. The Font handle
//     exposes the two callbacks toolkits need for layout: line height and
//     text width.
//   - Render: binds a drawing context to the caller's Frame, replays the
//     commands in order, flushes, and releases the context.
//
// # Example
//
//	cache := nkgg.NewFontCache()
//	font, err := cache.LoadFont("path/to/font.ttf", 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	list := nkgg.NewCommandList()
//	list.FillRect(10, 10, 200, 40, 4, nkgg.Color{R: 40, G: 40, B: 40, A: 255})
//	list.DrawText(16, 18, 180, 24, font, "hello", nkgg.Color{R: 255, G: 255, B: 255, A: 255})
//
//	frame := nkgg.NewFrame(640, 480)
//	if err := nkgg.Render(list, frame); err != nil {
//	    log.Fatal(err)
//	}
//
// The frame buffer is premultiplied RGBA with an explicit row stride, the
// same pixel convention as image.RGBA. Pixels are only written where
// commands paint; the background is the caller's responsibility.
package nkgg
