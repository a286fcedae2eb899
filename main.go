package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jinmeng260/nscp/cipher"
	"github.com/jinmeng260/nscp/core"
)

func logf(f string, v ...interface{}) {
	if config.Verbose {
		log.Printf(f, v...)
	}
}

func main() {

	var flags struct {
		Client   string
		Server   string
		Method   string
		Password string
		IV       string
		Keygen   int
		List     bool
	}

	flag.BoolVar(&config.Verbose, "verbose", false, "verbose mode")
	flag.BoolVar(&flags.List, "list", false, "list encryption methods and exit")
	flag.IntVar(&flags.Keygen, "keygen", 0, "generate a hex-encoded random transmit IV of given length in byte")
	flag.StringVar(&flags.Method, "method", "aes", "encryption method, by name or NSCA number")
	flag.StringVar(&flags.Password, "password", "", "password")
	flag.StringVar(&flags.IV, "iv", "", "hex-encoded peer IV (encrypt stdin as client)")
	flag.StringVar(&flags.Server, "s", "", "server listen address or url")
	flag.StringVar(&flags.Client, "c", "", "client connect address or url")
	flag.StringVar(&config.MetricsAddr, "metrics", "", "serve prometheus metrics on this address")
	flag.DurationVar(&config.Timeout, "timeout", 10*time.Second, "connection timeout")
	flag.Parse()

	core.Debug = config.Verbose

	if flags.List {
		listMethods(os.Stdout)
		return
	}

	if flags.Keygen > 0 {
		iv, err := cipher.GenerateTransmitIV(nil, flags.Keygen)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(hex.EncodeToString(iv))
		return
	}

	if config.MetricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			logf("metrics on %s", config.MetricsAddr)
			if err := http.ListenAndServe(config.MetricsAddr, nil); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	if flags.Client == "" && flags.Server == "" {
		ep, err := resolveEndpoint("", flags.Method, flags.Password)
		if err != nil {
			log.Fatal(err)
		}
		if err := encryptStdin(ep, flags.IV); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flags.Client != "" { // client mode
		ep, err := resolveEndpoint(flags.Client, flags.Method, flags.Password)
		if err != nil {
			log.Fatal(err)
		}
		if err := tcpSend(ep, os.Stdin); err != nil {
			log.Fatal(err)
		}
		return
	}

	// server mode
	ep, err := resolveEndpoint(flags.Server, flags.Method, flags.Password)
	if err != nil {
		log.Fatal(err)
	}
	go tcpRemote(ep)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
}

func listMethods(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMETHOD\tNAME\tKEY\tBLOCK\tSUPPORTED")
	for _, d := range cipher.List() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%v\n", int(d.Algorithm), d.Algorithm, d.Name, d.KeySize, d.BlockSize, d.Supported())
	}
	tw.Flush()
}

// encryptStdin encrypts stdin to stdout. Without a peer IV one is generated
// and printed to stderr, as a server would send it.
func encryptStdin(ep endpoint, ivHex string) error {
	var peerIV []byte
	if ivHex != "" {
		b, err := hex.DecodeString(ivHex)
		if err != nil {
			return err
		}
		peerIV = b
	}

	s := core.NewSession(core.Config{})
	defer s.Close()
	if err := s.SelectAndInit(ep.Algorithm, ep.Password, peerIV); err != nil {
		return err
	}
	if peerIV == nil {
		fmt.Fprintln(os.Stderr, hex.EncodeToString(s.TransmitIV()))
	}
	w := core.NewWriter(os.Stdout, s)
	if _, err := io.Copy(w, os.Stdin); err != nil {
		return err
	}
	return w.Flush()
}
