//go:build integration

package cmd

import (
	"io"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type apiResponse struct {
	status      int
	contentType string
	requestID   string
	body        string
}

func call(method, path, body string) apiResponse {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, api.URL+path, reader)
	Expect(err).NotTo(HaveOccurred())
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := api.Client().Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())

	return apiResponse{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		requestID:   resp.Header.Get("X-Request-ID"),
		body:        string(raw),
	}
}

func seedUser(username, password, email string) {
	_, err := sqlConn.Exec("INSERT INTO users (username, password, email) VALUES ($1, $2, $3)",
		username, password, email)
	Expect(err).NotTo(HaveOccurred())
}

func countUsers() int {
	var n int
	Expect(sqlConn.QueryRow("SELECT count(*) FROM users").Scan(&n)).To(Succeed())
	return n
}

var _ = Describe("Users API", func() {
	BeforeEach(func() {
		_, err := sqlConn.Exec("TRUNCATE users RESTART IDENTITY")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should list an empty table as an empty array", func() {
		resp := call(http.MethodGet, "/users", "")
		Expect(resp.status).To(Equal(http.StatusOK))
		Expect(resp.contentType).To(Equal("application/json"))
		Expect(resp.body).To(Equal("[]"))
		Expect(resp.requestID).NotTo(BeEmpty())
	})

	It("should list every stored user", func() {
		seedUser("a", "p1", "a@x")
		seedUser("b", "p2", "b@x")

		resp := call(http.MethodGet, "/users", "")
		Expect(resp.status).To(Equal(http.StatusOK))
		Expect(resp.body).To(Equal(
			`[{"id":1,"username":"a","password":"p1","email":"a@x"},` +
				`{"id":2,"username":"b","password":"p2","email":"b@x"}]`))
	})

	It("should return a created user by id", func() {
		created := call(http.MethodPost, "/users", `{"username":"alice","password":"pw","email":"alice@example.com"}`)
		Expect(created.status).To(Equal(http.StatusOK))
		Expect(created.body).To(Equal(`{"id":1,"username":"alice","password":"pw","email":"alice@example.com"}`))

		fetched := call(http.MethodGet, "/users/1", "")
		Expect(fetched.status).To(Equal(http.StatusOK))
		Expect(fetched.body).To(Equal(created.body))
	})

	It("should ignore extra keys in a create body", func() {
		resp := call(http.MethodPost, "/users", `{"username":"alice","password":"pw","email":"a@x","id":9}`)
		Expect(resp.status).To(Equal(http.StatusOK))
		Expect(resp.body).To(Equal(`{"id":1,"username":"alice","password":"pw","email":"a@x"}`))
	})

	It("should reject a create body with a missing field", func() {
		resp := call(http.MethodPost, "/users", `{"username":"alice","password":"pw"}`)
		Expect(resp.status).To(Equal(http.StatusBadRequest))
		Expect(resp.body).To(Equal("Invalid request payload."))
		Expect(countUsers()).To(BeZero())
	})

	It("should report a missing user as a bad request", func() {
		resp := call(http.MethodGet, "/users/42", "")
		Expect(resp.status).To(Equal(http.StatusBadRequest))
		Expect(resp.contentType).To(Equal("text/plain; charset=utf-8"))
		Expect(resp.body).To(Equal("User not found."))
	})

	It("should delete a user once", func() {
		seedUser("a", "p1", "a@x")

		first := call(http.MethodDelete, "/users/1", "")
		Expect(first.status).To(Equal(http.StatusOK))
		Expect(first.body).To(Equal("Successfully deleted 1 user(s)"))

		fetched := call(http.MethodGet, "/users/1", "")
		Expect(fetched.status).To(Equal(http.StatusBadRequest))
		Expect(fetched.body).To(Equal("User not found."))

		second := call(http.MethodDelete, "/users/1", "")
		Expect(second.status).To(Equal(http.StatusBadRequest))
		Expect(second.body).To(Equal("User not found"))
	})

	It("should store hostile input verbatim", func() {
		hostile := `x'); DROP TABLE users; --`

		resp := call(http.MethodPost, "/users", `{"username":"x'); DROP TABLE users; --","password":"p","email":"e"}`)
		Expect(resp.status).To(Equal(http.StatusOK))

		var stored string
		Expect(sqlConn.QueryRow("SELECT username FROM users WHERE id = 1").Scan(&stored)).To(Succeed())
		Expect(stored).To(Equal(hostile))
		Expect(countUsers()).To(Equal(1))
	})

	DescribeTable("unknown routes",
		func(method, path string) {
			resp := call(method, path, "")
			Expect(resp.status).To(Equal(http.StatusNotFound))
			Expect(resp.body).To(BeEmpty())
		},
		Entry("root", http.MethodGet, "/"),
		Entry("unknown collection", http.MethodGet, "/accounts"),
		Entry("non-integer id", http.MethodGet, "/users/abc"),
		Entry("unsupported method", http.MethodPut, "/users"),
		Entry("id beyond int4", http.MethodGet, "/users/99999999999"),
	)
})
