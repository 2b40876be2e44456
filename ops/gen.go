// Copyright 2025 go-ufxr Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ops

//go:generate go run ../cmd/exp2gen --targets fallback,avx2 6 tables/exp2.csv .
//go:generate go run ../cmd/singen --targets fallback,avx2 folded 6 tables/sin.csv .
//go:generate go run ../cmd/singen --targets fallback,avx2 full 6 tables/sin.csv .
