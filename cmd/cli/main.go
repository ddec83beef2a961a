// mintarc 集合服务命令行客户端
package main

func main() {
	Execute()
}
