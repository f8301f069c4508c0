package commands

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/distsim/cdis-codec/cdis"
	"github.com/distsim/cdis-codec/codec"
	"github.com/distsim/cdis-codec/dis"
	internalconfig "github.com/distsim/cdis-codec/internal/config"
	"github.com/distsim/cdis-codec/recorder"
	"github.com/distsim/cdis-codec/state"
	"github.com/distsim/cdis-codec/telemetry"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the relay",
	Long: `Run listens for legacy DIS and C-DIS datagrams and translates each
into the other format, applying the stateful partial-update delta engine.

Examples:
  relay run
  relay run --config /etc/relay/relay.yaml`,
	RunE: runRelay,
}

func runRelay(cmd *cobra.Command, args []string) error {
	cfg, err := internalconfig.Load(GetConfigFile())
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := prometheus.NewRegistry()
	rec := telemetry.NewRecorder(reg)

	var rdr *recorder.Recorder
	if cfg.RecorderPath != "" {
		rdr, err = recorder.Open(ctx, cfg.RecorderPath)
		if err != nil {
			return err
		}
		defer rdr.Close()
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	metricsSrv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	legacyConn, err := listenUDP(cfg.ListenLegacy)
	if err != nil {
		return err
	}
	defer legacyConn.Close()

	compressedConn, err := listenUDP(cfg.ListenCompressed)
	if err != nil {
		return err
	}
	defer compressedConn.Close()

	forwardCompressed, err := net.ResolveUDPAddr("udp", cfg.ForwardCompressed)
	if err != nil {
		return err
	}
	forwardLegacy, err := net.ResolveUDPAddr("udp", cfg.ForwardLegacy)
	if err != nil {
		return err
	}

	enc := state.NewEncoderState()
	dec := state.NewDecoderState()
	opts := codec.Options{Cdis: cfg.CdisOptions(), Telemetry: rec}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go relayLegacyToCompressed(sigCtx, logger, legacyConn, compressedConn, forwardCompressed, enc, opts, rdr)
	go relayCompressedToLegacy(sigCtx, logger, compressedConn, legacyConn, forwardLegacy, dec, opts, rdr)

	logger.Info("relay started",
		"listen_legacy", cfg.ListenLegacy,
		"listen_compressed", cfg.ListenCompressed,
		"metrics_addr", cfg.MetricsAddr,
	)

	<-sigCtx.Done()
	logger.Info("shutting down")
	_ = metricsSrv.Close()

	if n := enc.Collisions() + dec.Collisions(); n > 0 {
		logger.Warn("originator key collisions observed", "count", n)
	}

	return nil
}

func listenUDP(addr string) (*net.UDPConn, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenUDP("udp", udpAddr)
}

// relayLegacyToCompressed reads legacy datagrams from in, decodes them,
// re-encodes to C-DIS through the delta engine, and forwards the result
// out sendVia to dst.
func relayLegacyToCompressed(ctx context.Context, logger *slog.Logger, in *net.UDPConn, sendVia *net.UDPConn, dst *net.UDPAddr, enc *state.EncoderState, opts codec.Options, rdr *recorder.Recorder) {
	buf := make([]byte, 8192)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		in.SetReadDeadline(time.Now().Add(time.Second))
		n, _, err := in.ReadFromUDP(buf)
		if err != nil {
			continue
		}

		p, err := codec.DecodeLegacy(buf[:n])
		if err != nil {
			logger.Warn("legacy decode failed", "error", err)

			continue
		}

		header := cdis.Header{ProtocolVersion: cdis.CurrentProtocolVersion, Timestamp: uint32(time.Now().Unix())}
		out, err := codec.Encode(p, header, enc, opts, time.Now())
		if err != nil {
			logger.Warn("compressed encode failed", "error", err)

			continue
		}

		if _, err := sendVia.WriteToUDP(out, dst); err != nil {
			logger.Warn("forward failed", "error", err)
		}

		if rdr != nil {
			_ = rdr.Capture(ctx, recorder.Entry{At: time.Now(), Direction: recorder.DirectionLegacyToCompressed, PduType: uint8(p.Kind), Raw: out})
		}
	}
}

// relayCompressedToLegacy is relayLegacyToCompressed's mirror image.
func relayCompressedToLegacy(ctx context.Context, logger *slog.Logger, in *net.UDPConn, sendVia *net.UDPConn, dst *net.UDPAddr, dec *state.DecoderState, opts codec.Options, rdr *recorder.Recorder) {
	buf := make([]byte, 8192)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		in.SetReadDeadline(time.Now().Add(time.Second))
		n, _, err := in.ReadFromUDP(buf)
		if err != nil {
			continue
		}

		p, _, err := codec.Decode(buf[:n], dec, time.Now(), opts)
		if err != nil {
			logger.Warn("compressed decode failed", "error", err)

			continue
		}

		legacyHeader := dis.Header{ProtocolVersion: dis.ProtocolVersion1278_1_2012, Timestamp: uint32(time.Now().Unix())}
		out, err := codec.EncodeLegacy(p, legacyHeader)
		if err != nil {
			logger.Warn("legacy encode failed", "error", err)

			continue
		}

		if _, err := sendVia.WriteToUDP(out, dst); err != nil {
			logger.Warn("forward failed", "error", err)
		}

		if rdr != nil {
			_ = rdr.Capture(ctx, recorder.Entry{At: time.Now(), Direction: recorder.DirectionCompressedToLegacy, PduType: uint8(p.Kind), Raw: out})
		}
	}
}
