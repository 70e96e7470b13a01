package server_test

import (
	"io"
	"net"
	"net/http"
	"time"

	"usersvc/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	var (
		addr string
		srv  *server.HTTPServer
	)

	BeforeEach(func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		addr = ln.Addr().String()
		Expect(ln.Close()).To(Succeed())

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("pong"))
		})

		opts := server.DefaultOptions()
		opts.ShutdownTimeout = time.Second
		srv = server.NewHTTP(zap.NewNop().Sugar(), handler, addr, opts)
	})

	It("should serve until shut down", func() {
		errChan := srv.Run()

		var resp *http.Response
		Eventually(func() error {
			var err error
			resp, err = http.Get("http://" + addr + "/ping")
			return err
		}).Should(Succeed())
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(Equal("pong"))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	When("the address is taken", func() {
		var ln net.Listener

		BeforeEach(func() {
			var err error
			ln, err = net.Listen("tcp", addr)
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			Expect(ln.Close()).To(Succeed())
		})

		It("should report the bind error", func() {
			errChan := srv.Run()
			Eventually(errChan).Should(Receive(MatchError(ContainSubstring("listen on"))))
		})
	})
})
