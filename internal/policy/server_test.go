package policy

import (
	"bytes"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rcc-emulator/server/internal/testutil"
)

func TestServerWritesDocumentAndCloses(t *testing.T) {
	ln, _ := testutil.ListenTCP(t)
	srv := &Server{}
	ctx, cancel := testutil.ContextWithCancel(t)
	defer cancel()
	go srv.Serve(ctx, ln)

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	data, err := io.ReadAll(conn)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, []byte("<?xml")))
	require.Equal(t, byte(0), data[len(data)-1])
}
