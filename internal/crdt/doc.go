// Package crdt содержит примитивы слияния, из которых собираются стратегии
// разрешения конфликтов для записей прогресса: максимум, объединение множеств,
// append-only объединение коллекций и выбор по самой свежей метке времени.
//
// Все функции чистые и не изменяют входные значения. Каждая из них
// идемпотентна: f(f(a, b), b) == f(a, b) и f(a, a) == a.
package crdt
