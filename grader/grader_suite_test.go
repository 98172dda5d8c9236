package grader_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGrader(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Grader Suite")
}
