// Package logger is a standardized event logging framework for compilations.
package logger
