package utils

func Second[T any](_ any, t T) T { return t }
