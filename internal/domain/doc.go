// Package domain defines the shape contracts shared by every panel of the
// studio: the generated dashboard (metrics and charts), chat messages, and
// automation results. Types here carry no behaviour beyond construction and
// validation; they are independent of the model provider and of HTTP.
package domain
