package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"usersvc/internal/core"
	"usersvc/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		body    string
		req     *http.Request
		request payload.CreateUserRequest
		err     error
	)

	JustBeforeEach(func() {
		req = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		request = payload.CreateUserRequest{}
		err = payload.Decoder{}.DecodeJSONPayload(req, &request)
	})

	When("all fields are present", func() {
		BeforeEach(func() {
			body = `{"username":"foo_5","password":"foo_5","email":"foo_5"}`
		})

		It("should decode into a message", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(request.ToMessage()).To(Equal(core.NewUserMessage{
				Username: "foo_5",
				Password: "foo_5",
				Email:    "foo_5",
			}))
		})
	})

	When("fields are empty strings", func() {
		BeforeEach(func() {
			body = `{"username":"","password":"","email":""}`
		})

		It("should accept them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(request.ToMessage()).To(Equal(core.NewUserMessage{}))
		})
	})

	When("a field is missing", func() {
		BeforeEach(func() {
			body = `{"username":"foo_5","password":"foo_5"}`
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
			Expect(err).To(MatchError(ContainSubstring("email")))
		})
	})

	When("a field is null", func() {
		BeforeEach(func() {
			body = `{"username":null,"password":"foo_5","email":"foo_5"}`
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("username")))
		})
	})

	When("a field has the wrong type", func() {
		BeforeEach(func() {
			body = `{"username":5,"password":"foo_5","email":"foo_5"}`
		})

		It("should fail decoding", func() {
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})
	})

	When("an unknown field is sent", func() {
		BeforeEach(func() {
			body = `{"id":3,"username":"foo_5","password":"foo_5","email":"foo_5","role":"admin"}`
		})

		It("should ignore it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(request.ToMessage()).To(Equal(core.NewUserMessage{
				Username: "foo_5",
				Password: "foo_5",
				Email:    "foo_5",
			}))
		})
	})

	When("the body is not json", func() {
		BeforeEach(func() {
			body = `username=foo`
		})

		It("should fail decoding", func() {
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})
	})

	When("two objects are sent", func() {
		BeforeEach(func() {
			body = `{"username":"a","password":"b","email":"c"}{}`
		})

		It("should fail decoding", func() {
			Expect(err).To(MatchError(ContainSubstring("unexpected data after json object")))
		})
	})
})
